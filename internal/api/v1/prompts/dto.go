package prompts

import (
	"encoding/json"

	"promptcraft-backend/internal/models"
)

// CreatePromptInput persists the result of a generation event. Every field
// except full_prompt and raw_input may be empty; defaults are applied at the
// store boundary.
type CreatePromptInput struct {
	Title          string          `json:"title"`
	Role           string          `json:"role"`
	Goal           string          `json:"goal"`
	Format         string          `json:"format"`
	Context        string          `json:"context"`
	Constraints    string          `json:"constraints"`
	Style          string          `json:"style"`
	FullPrompt     string          `json:"full_prompt" binding:"required"`
	RawInput       string          `json:"raw_input" binding:"required"`
	TemplateUsed   *string         `json:"template_used"`
	GenerationMeta json.RawMessage `json:"generation_meta"`
}

type FavoriteInput struct {
	Favorite *bool `json:"favorite" binding:"required"`
}

type PromptListResponse struct {
	Prompts []models.PromptRecord `json:"prompts"`
	Total   int                   `json:"total"`

	// FallbackMode reports degraded operation: the list came from the
	// local cache because the remote store was unavailable at startup.
	FallbackMode bool `json:"fallback_mode"`
}
