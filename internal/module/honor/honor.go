package honor

import (
	"strconv"

	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// CreateReq 添加荣誉请求
type CreateReq struct {
	PersonID         uint   `json:"person_id"`
	CategoryID       uint   `json:"category_id"`
	Title            string `json:"title" binding:"required"` // 荣誉标题
	Description      string `json:"description"`              // 详细描述
	IssuingAuthority string `json:"issuing_authority"`        // 颁发机构
	IssueDate        string `json:"issue_date"`               // 颁发日期 YYYY-MM-DD
	Priority         string `json:"priority"`                 // 优先级 低/中/高
	Progress         *int   `json:"progress"`                 // 进度 0-100
	Attachment       string `json:"attachment"`               // 附件文件名
}

// UpdateFieldReq 单字段更新请求，字段名由存储层做白名单校验
type UpdateFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// Create 添加荣誉信息
func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定添加荣誉请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.PersonID == 0 {
		req.PersonID = 1
	}

	values := map[string]any{
		"person_id":         req.PersonID,
		"title":             req.Title,
		"description":       req.Description,
		"issuing_authority": req.IssuingAuthority,
		"issue_date":        req.IssueDate,
		"priority":          req.Priority,
		"attachment":        req.Attachment,
	}
	if req.CategoryID != 0 {
		values["category_id"] = req.CategoryID
	}
	if req.Progress != nil {
		values["progress"] = *req.Progress
	} else {
		values["progress"] = 100
	}

	id, err := db.Insert(schema.TableHonor, values)
	if err != nil {
		log.Error("添加荣誉失败", "title", req.Title, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("荣誉信息添加成功", "id", id, "title", req.Title)
	response.Success(c, gin.H{"id": id})
}

// List 返回全部荣誉信息（带分类名与个人姓名）
func List(c *gin.Context) {
	rows, err := db.GetAll(schema.TableHonor)
	if err != nil {
		log.Error("查询荣誉失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, rows)
}

// Update 更新荣誉的单个字段（如进度）
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

	if err := db.UpdateField(schema.TableHonor, id, req.Field, req.Value); err != nil {
		log.Error("更新荣誉失败", "id", id, "field", req.Field, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c)
}

// Delete 删除荣誉记录
func Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := db.Delete(schema.TableHonor, id); err != nil {
		log.Error("删除荣誉失败", "id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	log.Info("荣誉记录已删除", "id", id)
	response.Success(c)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return 0, false
	}
	return uint(id), true
}
