// internal/handlers/dealer/dealer.go
package dealer

import (
	"net/http"
	"strconv"

	"voltride-service/internal/domain/dealer"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/dealer"

	"github.com/gin-gonic/gin"
)

type DealerHandler struct {
	dealerService *service.Service
}

func NewDealerHandler(dealerService *service.Service) *DealerHandler {
	return &DealerHandler{dealerService: dealerService}
}

// ListActive is the public dealership locator, optionally filtered by city.
func (h *DealerHandler) ListActive(c *gin.Context) {
	dealers, err := h.dealerService.ListActive(c.Request.Context(), c.Query("city"))
	if err != nil {
		response.HandleError(c, err, "failed to load dealerships")
		return
	}
	response.Success(c, http.StatusOK, dealers)
}

// ========== Admin endpoints ==========

func (h *DealerHandler) List(c *gin.Context) {
	var filters dealer.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.dealerService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list dealers")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Dealers, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *DealerHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid dealer ID")
		return
	}

	d, err := h.dealerService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load dealer")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *DealerHandler) Create(c *gin.Context) {
	var req dealer.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	d, err := h.dealerService.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to create dealer")
		return
	}
	response.Success(c, http.StatusCreated, d)
}

func (h *DealerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid dealer ID")
		return
	}

	var req dealer.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	d, err := h.dealerService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err, "failed to update dealer")
		return
	}
	response.Success(c, http.StatusOK, d)
}

func (h *DealerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid dealer ID")
		return
	}

	if err := h.dealerService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete dealer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
