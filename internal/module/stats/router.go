package stats

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleStats) InitRouter(r *gin.RouterGroup) {
	// 系统概览相关端点以 /stats 为前缀
	statsGroup := r.Group("/stats")
	{
		statsGroup.GET("/overview", Overview)
		statsGroup.GET("/distribution", Distribution)
		statsGroup.GET("/recent", Recent)
		statsGroup.GET("/export", Export)
	}
}
