package education

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleEducation) InitRouter(r *gin.RouterGroup) {
	// 教育经历相关端点以 /education 为前缀
	educationGroup := r.Group("/education")
	{
		educationGroup.POST("/create", Create)
		educationGroup.GET("/list", List)
		educationGroup.DELETE("/delete/:id", Delete)
	}
}
