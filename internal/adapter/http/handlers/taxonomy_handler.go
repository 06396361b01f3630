package handlers

import (
	"net/http"

	"renovation_estimator/internal/adapter/http/dto/response"
	"renovation_estimator/internal/domain/estimating"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	taxonomy *estimating.Taxonomy
}

func NewTaxonomyHandler(t *estimating.Taxonomy) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomy: t}
}

// GetTaxonomy godoc
// @Summary      Work item types allowed per category
// @Tags         taxonomy
// @Produce      json
// @Success      200  {object}  response.TaxonomyResponse
// @Router       /taxonomy [get]
func (h *TaxonomyHandler) GetTaxonomy(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromTaxonomy(h.taxonomy))
}
