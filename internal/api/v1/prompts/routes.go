package prompts

import (
	"promptcraft-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, list *services.ListService) {
	h := NewHandler(list)

	group := router.Group("/prompts")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.PATCH("/:id/favorite", h.SetFavorite)
	group.DELETE("/:id", h.Delete)
}
