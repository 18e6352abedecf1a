// internal/domain/catalog/dto.go
package catalog

type ColorInput struct {
	Name     string `json:"name" validate:"required,max=50"`
	Hex      string `json:"hex" validate:"required,hexcolor"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`
}

type VariantInput struct {
	Name          string       `json:"name" validate:"required,max=100"`
	PriceINR      int64        `json:"price_inr" validate:"required,gt=0"`
	RangeKm       int          `json:"range_km" validate:"required,gt=0"`
	TopSpeedKmph  int          `json:"top_speed_kmph" validate:"required,gt=0"`
	BatteryKWh    float64      `json:"battery_kwh" validate:"required,gt=0"`
	ChargingHours float64      `json:"charging_hours" validate:"required,gt=0"`
	MotorPowerW   int          `json:"motor_power_w" validate:"required,gt=0"`
	Colors        []ColorInput `json:"colors" validate:"required,min=1,dive"`
}

// SaveProductRequest carries a model plus its variants and colors; the whole
// tree is written in one transaction.
type SaveProductRequest struct {
	Name        string         `json:"name" validate:"required,min=2,max=100"`
	Slug        string         `json:"slug" validate:"required,slug,max=100"`
	Tagline     string         `json:"tagline" validate:"max=200"`
	Description string         `json:"description" validate:"max=5000"`
	HeroImage   string         `json:"hero_image" validate:"omitempty,url,max=500"`
	Status      string         `json:"status" validate:"required,oneof=draft active archived"`
	Variants    []VariantInput `json:"variants" validate:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ListFilters struct {
	Status         string `form:"status"`
	Search         string `form:"search"`
	IncludeDeleted bool   `form:"include_deleted"`
	Page           int    `form:"page"`
	PageSize       int    `form:"page_size"`
}

type ListResponse struct {
	Models     []ScooterModel `json:"models"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// ComparisonEntry is one column of the public comparison view.
type ComparisonEntry struct {
	Model         ScooterModel `json:"model"`
	StartingPrice string       `json:"starting_price"`
	MaxRangeKm    int          `json:"max_range_km"`
	MaxTopSpeed   int          `json:"max_top_speed_kmph"`
	VariantCount  int          `json:"variant_count"`
}
