package category

import (
	"personal-info-system/internal/global/response"
	"personal-info-system/internal/schema"

	"github.com/gin-gonic/gin"
)

// CreateReq 新增分类请求
type CreateReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create 新增一个荣誉分类
func Create(c *gin.Context) {
	var req CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	id, err := db.Insert(schema.TableCategory, map[string]any{
		"name":        req.Name,
		"description": req.Description,
	})
	if err != nil {
		log.Error("新增分类失败", "name", req.Name, "error", err)
		response.Fail(c, response.MapError(err))
		return
	}

	log.Info("分类已新增", "id", id, "name", req.Name)
	response.Success(c, gin.H{"id": id})
}

// List 返回全部荣誉分类
func List(c *gin.Context) {
	rows, err := db.GetAll(schema.TableCategory)
	if err != nil {
		log.Error("查询分类失败", "error", err)
		response.Fail(c, response.MapError(err))
		return
	}
	response.Success(c, rows)
}
