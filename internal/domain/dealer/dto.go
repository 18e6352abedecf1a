// internal/domain/dealer/dto.go
package dealer

type SaveRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=150"`
	AddressLine    string   `json:"address_line" validate:"required,max=300"`
	City           string   `json:"city" validate:"required,max=100"`
	State          string   `json:"state" validate:"required,max=100"`
	Pincode        string   `json:"pincode" validate:"required,len=6,numeric"`
	Latitude       float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude      float64  `json:"longitude" validate:"gte=-180,lte=180"`
	Phone          string   `json:"phone" validate:"required,indian_mobile"`
	Email          string   `json:"email" validate:"omitempty,email,max=255"`
	OperatingHours []string `json:"operating_hours" validate:"max=7,dive,max=60"`
	IsActive       *bool    `json:"is_active"`
}

type ListFilters struct {
	City     string `form:"city"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ListResponse struct {
	Dealers    []Dealer `json:"dealers"`
	Total      int64    `json:"total"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`
}
