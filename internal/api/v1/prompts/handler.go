package prompts

import (
	"errors"
	"net/http"

	"promptcraft-backend/internal/models"
	"promptcraft-backend/internal/services"
	"promptcraft-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type Handler struct {
	list *services.ListService
}

func NewHandler(list *services.ListService) *Handler {
	return &Handler{list: list}
}

// Create godoc
// @Summary Save a generated prompt
// @Description Persists a prompt record; falls back to the local cache when the store is unreachable
// @Tags prompts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   input  body  CreatePromptInput  true  "Prompt record"
// @Success 201 {object} utils.Response{data=models.PromptRecord}
// @Failure 400 {object} utils.Response
// @Router /prompts [post]
func (h *Handler) Create(c *gin.Context) {
	var input CreatePromptInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	record := &models.PromptRecord{
		Title:        input.Title,
		Role:         input.Role,
		Goal:         input.Goal,
		Format:       input.Format,
		Context:      input.Context,
		Constraints:  input.Constraints,
		Style:        input.Style,
		FullPrompt:   input.FullPrompt,
		RawInput:     input.RawInput,
		TemplateUsed: input.TemplateUsed,
	}
	if len(input.GenerationMeta) > 0 {
		record.GenerationMeta = datatypes.JSON(input.GenerationMeta)
	}

	created, err := h.list.Create(record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to save prompt"))
		return
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse("Prompt saved", created))
}

// List godoc
// @Summary List saved prompts
// @Description Returns the working list newest-first, optionally filtered by industry and favorites
// @Tags prompts
// @Produce  json
// @Security ApiKeyAuth
// @Param   industry   query  string  false  "Industry template id"
// @Param   favorites  query  bool    false  "Favorites only"
// @Success 200 {object} utils.Response{data=PromptListResponse}
// @Router /prompts [get]
func (h *Handler) List(c *gin.Context) {
	industry := c.Query("industry")
	favoritesOnly := c.Query("favorites") == "true"

	records := h.list.List(industry, favoritesOnly)

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompts retrieved", PromptListResponse{
		Prompts:      records,
		Total:        len(records),
		FallbackMode: h.list.FallbackMode(),
	}))
}

// Get godoc
// @Summary Get a prompt by id
// @Tags prompts
// @Produce  json
// @Security ApiKeyAuth
// @Param   id  path  string  true  "Prompt id"
// @Success 200 {object} utils.Response{data=models.PromptRecord}
// @Failure 404 {object} utils.Response
// @Router /prompts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	record, err := h.list.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPromptNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to load prompt"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt retrieved", record))
}

// SetFavorite godoc
// @Summary Toggle the favorite flag
// @Tags prompts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id     path  string         true  "Prompt id"
// @Param   input  body  FavoriteInput  true  "Favorite flag"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Router /prompts/{id}/favorite [patch]
func (h *Handler) SetFavorite(c *gin.Context) {
	var input FavoriteInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if err := h.list.SetFavorite(c.Param("id"), *input.Favorite); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to update favorite status"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Favorite status updated", nil))
}

// Delete godoc
// @Summary Delete a prompt
// @Description Removes the record; deleting an id absent from the working list is a no-op
// @Tags prompts
// @Produce  json
// @Security ApiKeyAuth
// @Param   id  path  string  true  "Prompt id"
// @Success 200 {object} utils.Response
// @Router /prompts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.list.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Failed to delete prompt"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Prompt deleted", nil))
}
