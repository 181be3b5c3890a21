package person

import (
	"strconv"

	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// UpdateReq 更新个人信息请求，指针字段支持部分更新
type UpdateReq struct {
	Name           *string `json:"name"`
	Gender         *string `json:"gender"`
	BirthDate      *string `json:"birth_date"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	Occupation     *string `json:"occupation"`
	EducationLevel *string `json:"education_level"`
}

// Info 返回全部个人信息（系统始终只有一条默认记录）
func Info(c *gin.Context) {
	rows, err := db.GetAll(schema.TablePerson)
	if err != nil {
		log.Error("查询个人信息失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, rows)
}

// Update 按表单提交更新个人信息的若干字段
func Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var req UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新个人信息请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	values := map[string]any{}
	for field, v := range map[string]*string{
		"name":            req.Name,
		"gender":          req.Gender,
		"birth_date":      req.BirthDate,
		"email":           req.Email,
		"phone":           req.Phone,
		"address":         req.Address,
		"occupation":      req.Occupation,
		"education_level": req.EducationLevel,
	} {
		if v != nil {
			values[field] = *v
		}
	}
	if len(values) == 0 {
		response.Fail(c, response.ErrInvalidRequest.WithTips("没有需要更新的字段"))
		return
	}

	if err := db.UpdateFields(schema.TablePerson, uint(id), values); err != nil {
		log.Error("更新个人信息失败", "id", id, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("个人信息已更新", "id", id)
	response.Success(c)
}
