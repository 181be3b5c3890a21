package assistant

import (
	"github.com/gin-gonic/gin"
)

func (m *ModuleAssistant) InitRouter(r *gin.RouterGroup) {
	// AI 助手相关端点以 /assistant 为前缀
	assistantGroup := r.Group("/assistant")
	{
		assistantGroup.POST("/chat", Chat)
		assistantGroup.GET("/messages", Messages)

		// 补全流程：查看、编辑、确认、取消
		assistantGroup.GET("/pending", Pending)
		assistantGroup.POST("/pending/field", SetField)
		assistantGroup.POST("/pending/confirm", Confirm)
		assistantGroup.POST("/pending/cancel", Cancel)
	}
}
