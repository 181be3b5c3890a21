package person

import (
	"github.com/gin-gonic/gin"
)

func (p *ModulePerson) InitRouter(r *gin.RouterGroup) {
	// 个人信息相关端点以 /person 为前缀
	personGroup := r.Group("/person")
	{
		personGroup.GET("/info", Info)
		personGroup.PUT("/update/:id", Update)
	}
}
