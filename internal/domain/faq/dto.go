// internal/domain/faq/dto.go
package faq

type SaveRequest struct {
	Question  string `json:"question" validate:"required,min=5,max=500"`
	Answer    string `json:"answer" validate:"required,max=5000"`
	Category  string `json:"category" validate:"required,max=50"`
	SortOrder int    `json:"sort_order" validate:"gte=0"`
	IsActive  *bool  `json:"is_active"`
}

type ListFilters struct {
	Category string `form:"category"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ListResponse struct {
	FAQs       []FAQ `json:"faqs"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
