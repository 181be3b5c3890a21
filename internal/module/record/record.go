package record

import (
	"os"
	"path/filepath"
	"strconv"

	"personal-info-system/config"
	"personal-info-system/internal/global/response"
	"personal-info-system/internal/matcher"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// CreateReq 数据输入表单
type CreateReq struct {
	Title      string `json:"title" binding:"required"`    // 标题
	Category   string `json:"category" binding:"required"` // 类别（自由文本）
	Notes      string `json:"notes"`                       // 备注
	Priority   string `json:"priority"`                    // 优先级
	Progress   int    `json:"progress"`                    // 进度 0-100
	Attachment string `json:"attachment"`                  // 附件文件名（先经 /record/upload 上传）
}

// UpdateFieldReq 单字段更新请求
type UpdateFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// Create 保存一条通用记录
func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定保存记录请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	id, err := db.Insert(schema.TableRecord, map[string]any{
		"title":      req.Title,
		"category":   req.Category,
		"notes":      req.Notes,
		"priority":   req.Priority,
		"progress":   req.Progress,
		"attachment": req.Attachment,
	})
	if err != nil {
		log.Error("保存记录失败", "title", req.Title, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("记录已保存", "id", id, "title", req.Title)
	response.Success(c, gin.H{"id": id})
}

// List 返回全部记录，?search= 时做关键词过滤
func List(c *gin.Context) {
	rows, err := db.GetAll(schema.TableRecord)
	if err != nil {
		log.Error("查询记录失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	if search := c.Query("search"); search != "" {
		rows = matcher.Match(rows, search)
	}
	response.Success(c, rows)
}

// Update 更新记录的单个字段（进度、优先级等）
func Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := db.UpdateField(schema.TableRecord, id, req.Field, req.Value); err != nil {
		log.Error("更新记录失败", "id", id, "field", req.Field, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c)
}

// Delete 删除记录
func Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := db.Delete(schema.TableRecord, id); err != nil {
		log.Error("删除记录失败", "id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	log.Info("记录已删除", "id", id)
	response.Success(c)
}

// Upload 保存附件到本地目录，实体字段只存原始文件名
func Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	home := config.Get().Storage.Home
	if err := os.MkdirAll(home, 0o755); err != nil {
		log.Error("创建附件目录失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	filename := filepath.Base(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(home, filename)); err != nil {
		log.Error("保存附件失败", "filename", filename, "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("附件已保存", "filename", filename)
	response.Success(c, gin.H{"filename": filename})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return 0, false
	}
	return uint(id), true
}
