package record

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleRecord) InitRouter(r *gin.RouterGroup) {
	// 通用记录相关端点以 /record 为前缀
	recordGroup := r.Group("/record")
	{
		recordGroup.POST("/create", Create)
		recordGroup.GET("/list", List)
		recordGroup.PUT("/update/:id", Update)
		recordGroup.DELETE("/delete/:id", Delete)
		recordGroup.POST("/upload", Upload)
	}
}
