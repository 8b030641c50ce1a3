package api

import (
	"promptcraft-backend/config"
	_ "promptcraft-backend/docs"
	"promptcraft-backend/internal/api/v1/generate"
	"promptcraft-backend/internal/api/v1/prompts"
	"promptcraft-backend/internal/api/v1/session"
	templateRoutes "promptcraft-backend/internal/api/v1/templates"
	"promptcraft-backend/internal/database"
	"promptcraft-backend/internal/fallback"
	"promptcraft-backend/internal/llm"
	"promptcraft-backend/internal/middleware"
	"promptcraft-backend/internal/models"
	"promptcraft-backend/internal/services"
	"promptcraft-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// An unreachable database is a degraded mode, not a startup failure:
	// the prompt list service serves the local fallback cache instead.
	if _, err := database.Connect(cfg.DSN()); err != nil {
		logger.Log.Warn("database unavailable, prompt records will use the local fallback cache", zap.Error(err))
	} else if err := database.DB.AutoMigrate(&models.PromptRecord{}); err != nil {
		return nil, err
	}

	if err := database.ConnectRedis(cfg); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	generationService := services.NewGenerationService(llm.NewClient(cfg))
	listService := services.NewListService(models.SharedOwnerID, fallback.New(cfg.FallbackCachePath))

	// API v1
	v1 := router.Group("/api/v1")
	{
		session.RegisterRoutes(v1)
		templateRoutes.RegisterRoutes(v1)

		gated := v1.Group("/")
		gated.Use(middleware.SessionGate())
		{
			generate.RegisterRoutes(gated, generationService)
			prompts.RegisterRoutes(gated, listService)
		}
	}

	return router, nil
}
