// internal/domain/lead/dto.go
package lead

type SubmitRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,indian_mobile"`
	City    string `json:"city" validate:"required,min=2,max=100"`
	ModelID *int64 `json:"model_id" validate:"omitempty,gt=0"`
	Message string `json:"message" validate:"max=2000"`
	Source  string `json:"source" validate:"omitempty,oneof=website showroom referral social ad other"`
}

type UpdateStatusRequest struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

type ListFilters struct {
	Status    string `form:"status"`
	Source    string `form:"source"`
	City      string `form:"city"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type ListResponse struct {
	Leads      []Lead `json:"leads"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
