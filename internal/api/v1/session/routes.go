package session

import (
	"promptcraft-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/verify-password", VerifyPassword)
	router.POST("/logout", middleware.SessionGate(), Logout)
}
