package schedule

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleSchedule) InitRouter(r *gin.RouterGroup) {
	// 日程相关端点以 /schedule 为前缀
	scheduleGroup := r.Group("/schedule")
	{
		scheduleGroup.POST("/create", Create)
		scheduleGroup.GET("/list", List)
		scheduleGroup.PUT("/update/:id", Update)
		scheduleGroup.DELETE("/delete/:id", Delete)
	}
}
