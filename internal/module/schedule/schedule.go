package schedule

import (
	"strconv"

	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// CreateReq 添加日程请求
type CreateReq struct {
	PersonID    uint   `json:"person_id"`
	Title       string `json:"title" binding:"required"`      // 日程标题
	Description string `json:"description"`                   // 日程描述
	StartTime   string `json:"start_time" binding:"required"` // 开始时间 YYYY-MM-DD HH:MM
	EndTime     string `json:"end_time"`                      // 结束时间
	Location    string `json:"location"`                      // 地点
	Status      string `json:"status"`                        // 状态
	Priority    string `json:"priority"`                      // 优先级
	Reminder    string `json:"reminder"`                      // 提醒时间，如"提前15分钟"
}

// UpdateFieldReq 单字段更新请求
type UpdateFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}

// Create 添加日程
func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定添加日程请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.PersonID == 0 {
		req.PersonID = 1
	}

	id, err := db.Insert(schema.TableSchedule, map[string]any{
		"person_id":   req.PersonID,
		"title":       req.Title,
		"description": req.Description,
		"start_time":  req.StartTime,
		"end_time":    req.EndTime,
		"location":    req.Location,
		"status":      req.Status,
		"priority":    req.Priority,
		"reminder":    req.Reminder,
	})
	if err != nil {
		log.Error("添加日程失败", "title", req.Title, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("日程添加成功", "id", id, "title", req.Title)
	response.Success(c, gin.H{"id": id})
}

// List 返回全部日程，支持按状态筛选（?status=进行中）
func List(c *gin.Context) {
	rows, err := db.GetAll(schema.TableSchedule)
	if err != nil {
		log.Error("查询日程失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	if status := c.Query("status"); status != "" && status != "全部" {
		var filtered []map[string]any
		for _, row := range rows {
			if row["status"] == status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	response.Success(c, rows)
}

// Update 更新日程的单个字段（如状态）
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

	if err := db.UpdateField(schema.TableSchedule, id, req.Field, req.Value); err != nil {
		log.Error("更新日程失败", "id", id, "field", req.Field, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c)
}

// Delete 删除日程
func Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := db.Delete(schema.TableSchedule, id); err != nil {
		log.Error("删除日程失败", "id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	log.Info("日程已删除", "id", id)
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
