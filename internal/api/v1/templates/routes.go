package templates

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/templates")
	group.GET("", List)
	group.GET("/:id", Get)
}
