// internal/handlers/faq/faq.go
package faq

import (
	"net/http"
	"strconv"

	"voltride-service/internal/domain/faq"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/faq"

	"github.com/gin-gonic/gin"
)

type FAQHandler struct {
	faqService *service.Service
}

func NewFAQHandler(faqService *service.Service) *FAQHandler {
	return &FAQHandler{faqService: faqService}
}

// ListActive returns active FAQs for the public site, optionally filtered
// by category.
func (h *FAQHandler) ListActive(c *gin.Context) {
	faqs, err := h.faqService.ListActive(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.HandleError(c, err, "failed to load faqs")
		return
	}
	response.Success(c, http.StatusOK, faqs)
}

// ========== Admin endpoints ==========

func (h *FAQHandler) List(c *gin.Context) {
	var filters faq.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.faqService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list faqs")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.FAQs, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *FAQHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid faq ID")
		return
	}

	f, err := h.faqService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load faq")
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *FAQHandler) Create(c *gin.Context) {
	var req faq.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	f, err := h.faqService.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to create faq")
		return
	}
	response.Success(c, http.StatusCreated, f)
}

func (h *FAQHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid faq ID")
		return
	}

	var req faq.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	f, err := h.faqService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err, "failed to update faq")
		return
	}
	response.Success(c, http.StatusOK, f)
}

func (h *FAQHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid faq ID")
		return
	}

	if err := h.faqService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete faq")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
