package http

import (
	"net/http"

	"cinewave/services/catalog/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	catalogUseCase usecase.CatalogUseCase
}

func NewAdminHandler(catalogUseCase usecase.CatalogUseCase) *AdminHandler {
	return &AdminHandler{
		catalogUseCase: catalogUseCase,
	}
}

type ReviewRequest struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

type FeatureRequest struct {
	Featured *bool `json:"featured" binding:"required"`
}

// ListAllContents godoc
// @Summary      List all content for moderation
// @Description  Lists content in every review state. Filter with status=pending|approved|rejected.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Review status filter"
// @Param        type    query  string  false  "FILM or SERIE"
// @Param        search  query  string  false  "Title search"
// @Success      200  {object}  ContentListResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/contents [get]
func (h *AdminHandler) ListAllContents(c *gin.Context) {
	contents, total, err := h.catalogUseCase.ListAll(listInput(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ContentListResponse{Contents: contents, Total: total})
}

// ReviewContent godoc
// @Summary      Approve or reject content
// @Description  Records the review decision. Rejections require a reason, which is stored and surfaced to the creator.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string         true  "Content ID"
// @Param        request body  ReviewRequest  true  "Review decision"
// @Success      200  {object}  entity.Content
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/contents/{id}/review [post]
func (h *AdminHandler) ReviewContent(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.catalogUseCase.ReviewContent(c.Param("id"), req.Approve, req.Reason)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// SetFeatured godoc
// @Summary      Feature or unfeature content
// @Description  Marks approved content as featured on the storefront.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  string          true  "Content ID"
// @Param        request body  FeatureRequest  true  "Featured flag"
// @Success      200  {object}  entity.Content
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/contents/{id}/feature [post]
func (h *AdminHandler) SetFeatured(c *gin.Context) {
	var req FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := h.catalogUseCase.SetFeatured(c.Param("id"), *req.Featured)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, content)
}
