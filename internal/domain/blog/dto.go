// internal/domain/blog/dto.go
package blog

type SaveRequest struct {
	Title      string   `json:"title" validate:"required,min=3,max=200"`
	Slug       string   `json:"slug" validate:"required,slug,max=200"`
	Excerpt    string   `json:"excerpt" validate:"required,max=500"`
	Content    string   `json:"content" validate:"required"`
	Category   string   `json:"category" validate:"required,max=50"`
	Author     string   `json:"author" validate:"required,max=100"`
	Tags       []string `json:"tags" validate:"max=10,dive,max=40"`
	CoverImage string   `json:"cover_image" validate:"omitempty,url,max=500"`
	Published  bool     `json:"published"`
}

type ListFilters struct {
	Category  string `form:"category"`
	Published *bool  `form:"published"`
	Search    string `form:"search"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

type ListResponse struct {
	Posts      []Post `json:"posts"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
