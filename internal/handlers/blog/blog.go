// internal/handlers/blog/blog.go
package blog

import (
	"net/http"
	"strconv"

	"voltride-service/internal/domain/blog"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/blog"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService *service.Service
}

func NewBlogHandler(blogService *service.Service) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

// ListPublished returns published posts for the public site.
func (h *BlogHandler) ListPublished(c *gin.Context) {
	var filters blog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.blogService.ListPublished(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to load posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

// GetPublishedBySlug returns one published post with its read time.
func (h *BlogHandler) GetPublishedBySlug(c *gin.Context) {
	p, err := h.blogService.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.HandleError(c, err, "failed to load post")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// ========== Admin endpoints ==========

func (h *BlogHandler) List(c *gin.Context) {
	var filters blog.ListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.ValidationError(c, "invalid query parameters")
		return
	}

	result, err := h.blogService.List(c.Request.Context(), &filters)
	if err != nil {
		response.HandleError(c, err, "failed to list posts")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Posts, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	})
}

func (h *BlogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid post ID")
		return
	}

	p, err := h.blogService.Get(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err, "failed to load post")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req blog.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	p, err := h.blogService.Create(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err, "failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *BlogHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid post ID")
		return
	}

	var req blog.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}

	p, err := h.blogService.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.HandleError(c, err, "failed to update post")
		return
	}
	response.Success(c, http.StatusOK, p)
}

// SetPublished toggles publication. Takes {id, published}.
func (h *BlogHandler) SetPublished(c *gin.Context) {
	var req struct {
		ID        int64 `json:"id" binding:"required"`
		Published *bool `json:"published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "id and published are required")
		return
	}

	p, err := h.blogService.SetPublished(c.Request.Context(), req.ID, *req.Published)
	if err != nil {
		response.HandleError(c, err, "failed to change publication")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "invalid post ID")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err, "failed to delete post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
