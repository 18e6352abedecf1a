// internal/handlers/lead/lead.go
package lead

import (
	"net/http"
	"strconv"

	"voltride-service/internal/domain/lead"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/lead"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadService *service.Service
}

func NewLeadHandler(leadService *service.Service) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Submit handles the public enquiry form.
func (h *LeadHandler) Submit(c *gin.Context) {
	var req lead.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	l, err := h.leadService.Submit(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to submit enquiry")
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// List returns leads for the back office with filters and pagination.
func (h *LeadHandler) List(c *gin.Context) {
	var filters lead.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.leadService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list leads")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Leads, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Get returns one lead by ID.
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid lead ID")
		return
	}

	l, err := h.leadService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load lead")
		return
	}

	response.Success(c, http.StatusOK, l)
}

// UpdateStatus moves a lead through its lifecycle. Takes {id, status}.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req lead.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "id and status are required")
		return
	}

	l, err := h.leadService.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		response.HandleError(c, err, "failed to update lead")
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Delete removes a lead permanently.
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid lead ID")
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete lead")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
