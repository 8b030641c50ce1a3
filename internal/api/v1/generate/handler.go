package generate

import (
	"errors"
	"net/http"
	"strings"

	"promptcraft-backend/internal/services"
	"promptcraft-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	svc *services.GenerationService
}

func NewHandler(svc *services.GenerationService) *Handler {
	return &Handler{svc: svc}
}

// Generate godoc
// @Summary Generate a structured prompt
// @Description Transforms a free-text description into a structured prompt, optionally seeded by an industry template
// @Tags generate
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  GenerateInput  true  "Generation input"
// @Success 200 {object} services.GeneratedPrompt
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /generate [post]
func (h *Handler) Generate(c *gin.Context) {
	var input GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.UserInput) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required field: userInput"})
		return
	}

	templateID := ""
	if input.TemplateID != nil {
		templateID = *input.TemplateID
	}

	result, err := h.svc.Generate(c.Request.Context(), input.UserInput, templateID)
	if err != nil {
		if errors.Is(err, services.ErrMissingInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required field: userInput"})
			return
		}

		var parseErr *services.UnparseableResponseError
		if errors.As(err, &parseErr) {
			logger.Log.Error("completion response was not valid JSON",
				zap.Error(parseErr.Err),
				zap.String("raw", parseErr.Raw))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:  "Invalid response from completion API",
				Result: parseErr.Raw,
			})
			return
		}

		logger.Log.Error("prompt generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to generate prompt. Please try again.",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
