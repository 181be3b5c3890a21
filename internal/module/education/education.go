package education

import (
	"strconv"

	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// CreateReq 添加教育经历请求
type CreateReq struct {
	PersonID     uint     `json:"person_id"`
	Institution  string   `json:"institution" binding:"required"` // 学校/机构名称
	Degree       string   `json:"degree"`                         // 学位
	Major        string   `json:"major"`                          // 专业
	StartDate    string   `json:"start_date"`                     // 开始日期 YYYY-MM-DD
	EndDate      string   `json:"end_date"`                       // 结束日期
	GPA          *float64 `json:"gpa"`                            // GPA 0.0-4.0
	Achievements string   `json:"achievements"`                   // 成就/荣誉
}

// Create 添加教育经历
func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定添加教育经历请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.PersonID == 0 {
		req.PersonID = 1
	}
	if req.GPA != nil && (*req.GPA < 0 || *req.GPA > 4.0) {
		response.Fail(c, response.ErrValidation.WithTips("GPA 必须在 0.0 到 4.0 之间"))
		return
	}

	values := map[string]any{
		"person_id":    req.PersonID,
		"institution":  req.Institution,
		"degree":       req.Degree,
		"major":        req.Major,
		"start_date":   req.StartDate,
		"end_date":     req.EndDate,
		"achievements": req.Achievements,
	}
	if req.GPA != nil {
		values["gpa"] = *req.GPA
	}

	id, err := db.Insert(schema.TableEducation, values)
	if err != nil {
		log.Error("添加教育经历失败", "institution", req.Institution, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("教育经历添加成功", "id", id, "institution", req.Institution)
	response.Success(c, gin.H{"id": id})
}

// List 返回全部教育经历
func List(c *gin.Context) {
	rows, err := db.GetAll(schema.TableEducation)
	if err != nil {
		log.Error("查询教育经历失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, rows)
}

// Delete 删除教育经历
func Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if err := db.Delete(schema.TableEducation, uint(id)); err != nil {
		log.Error("删除教育经历失败", "id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	log.Info("教育经历已删除", "id", id)
	response.Success(c)
}
