package templates

import (
	"net/http"

	catalog "promptcraft-backend/internal/templates"
	"promptcraft-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type TemplateListResponse struct {
	Templates []catalog.IndustryTemplate `json:"templates"`
	Total     int                        `json:"total"`
}

// List godoc
// @Summary List industry templates
// @Description Returns the static industry template catalog
// @Tags templates
// @Produce  json
// @Success 200 {object} utils.Response{data=TemplateListResponse}
// @Router /templates [get]
func List(c *gin.Context) {
	all := catalog.All()
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Templates retrieved", TemplateListResponse{
		Templates: all,
		Total:     len(all),
	}))
}

// Get godoc
// @Summary Get an industry template by id
// @Tags templates
// @Produce  json
// @Param   id  path  string  true  "Template id"
// @Success 200 {object} utils.Response{data=catalog.IndustryTemplate}
// @Failure 404 {object} utils.Response
// @Router /templates/{id} [get]
func Get(c *gin.Context) {
	t, ok := catalog.ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, "Template not found"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Template retrieved", t))
}
