// internal/handlers/booking/booking.go
package booking

import (
	"net/http"
	"strconv"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/booking"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingService *service.Service
}

func NewBookingHandler(bookingService *service.Service) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Submit handles the public test-ride form.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req booking.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	b, err := h.bookingService.Submit(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to book test ride")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

// Slots returns the bookable time slots shown on the public form.
func (h *BookingHandler) Slots(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"time_slots": h.bookingService.TimeSlots()})
}

// List returns bookings for the back office with filters and pagination.
func (h *BookingHandler) List(c *gin.Context) {
	var filters booking.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.bookingService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list bookings")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Bookings, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// Get returns one booking by ID.
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid booking ID")
		return
	}

	b, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

// UpdateStatus moves a booking through its lifecycle. Takes {id, status}.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "id and status are required")
		return
	}

	b, err := h.bookingService.UpdateStatus(c.Request.Context(), req.ID, req.Status)
	if err != nil {
		response.HandleError(c, err, "failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

// Delete removes a booking permanently.
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid booking ID")
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
