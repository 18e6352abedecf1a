// internal/domain/booking/dto.go
package booking

type SubmitRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Phone    string `json:"phone" validate:"required,indian_mobile"`
	DealerID int64  `json:"dealer_id" validate:"required,gt=0"`
	ModelID  *int64 `json:"model_id" validate:"omitempty,gt=0"`
	RideDate string `json:"ride_date" validate:"required,not_past_date"`
	TimeSlot string `json:"time_slot" validate:"required,time_slot"`
	Notes    string `json:"notes" validate:"max=1000"`
}

type UpdateStatusRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ListFilters struct {
	Status    string `form:"status"`
	DealerID  int64  `form:"dealer_id"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type ListResponse struct {
	Bookings   []TestRideBooking `json:"bookings"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
