package generate

import (
	"promptcraft-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc *services.GenerationService) {
	h := NewHandler(svc)
	router.POST("/generate", h.Generate)
}
