package category

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleCategory) InitRouter(r *gin.RouterGroup) {
	categoryGroup := r.Group("/category")
	{
		categoryGroup.POST("/create", Create)
		categoryGroup.GET("/list", List)
	}
}
