package honor

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleHonor) InitRouter(r *gin.RouterGroup) {
	// 荣誉信息相关端点以 /honor 为前缀
	honorGroup := r.Group("/honor")
	{
		honorGroup.POST("/create", Create)
		honorGroup.GET("/list", List)
		honorGroup.PUT("/update/:id", Update)
		honorGroup.DELETE("/delete/:id", Delete)
	}
}
