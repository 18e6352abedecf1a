// internal/handlers/catalog/catalog.go
package catalog

import (
	"net/http"
	"strconv"
	"strings"

	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *service.Service
}

func NewCatalogHandler(catalogService *service.Service) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ========== Public endpoints ==========

// ListPublic returns active models with variants and colors.
func (h *CatalogHandler) ListPublic(c *gin.Context) {
	models, err := h.catalogService.ListPublic(c.Request.Context())
	if err != nil {
		response.HandleError(c, err, "failed to load models")
		return
	}
	response.Success(c, http.StatusOK, models)
}

// GetPublicBySlug returns one active model by slug.
func (h *CatalogHandler) GetPublicBySlug(c *gin.Context) {
	m, err := h.catalogService.GetPublicBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.HandleError(c, err, "failed to load model")
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Compare returns side-by-side entries for ?models=slug-a,slug-b[,slug-c].
func (h *CatalogHandler) Compare(c *gin.Context) {
	raw := c.Query("models")
	if raw == "" {
		response.ValidationError(c, "models query parameter is required")
		return
	}

	var slugs []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			slugs = append(slugs, s)
		}
	}

	entries, err := h.catalogService.Compare(c.Request.Context(), slugs)
	if err != nil {
		response.HandleError(c, err, "failed to compare models")
		return
	}
	response.Success(c, http.StatusOK, entries)
}

// ========== Admin endpoints ==========

func (h *CatalogHandler) List(c *gin.Context) {
	var filters catalog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.catalogService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list models")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Models, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid model ID")
		return
	}

	m, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load model")
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Create writes a model with its full variant tree in one transaction.
func (h *CatalogHandler) Create(c *gin.Context) {
	var req catalog.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	m, err := h.catalogService.Save(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to create model")
		return
	}
	response.Success(c, http.StatusCreated, m)
}

// Update rewrites a model and its variant tree.
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid model ID")
		return
	}

	var req catalog.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	m, err := h.catalogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err, "failed to update model")
		return
	}
	response.Success(c, http.StatusOK, m)
}

// UpdateStatus changes a model's lifecycle status. Takes {id, status}.
func (h *CatalogHandler) UpdateStatus(c *gin.Context) {
	var req catalog.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "id and status are required")
		return
	}

	m, err := h.catalogService.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		response.HandleError(c, err, "failed to update model status")
		return
	}
	response.Success(c, http.StatusOK, m)
}

// Delete soft-deletes a model.
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid model ID")
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete model")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
