// internal/pkg/response/response.go
package response

import (
	"errors"
	"net/http"

	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/validators"

	"github.com/gin-gonic/gin"
)

// Response defines the standard API response envelope.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// Meta carries pagination details for list responses.
type Meta struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ErrorBody is the normalized error payload. Raw database or stack detail
// never goes here; it is logged server-side only.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a successful response with optional data.
func Success(c *gin.Context, status int, data interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Response{Success: true, Data: data})
}

// SuccessWithMeta sends a successful list response with pagination meta.
func SuccessWithMeta(c *gin.Context, status int, data interface{}, meta *Meta) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Response{Success: true, Data: data, Meta: meta})
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, code, message string) {
	c.Abort()
	c.JSON(status, Response{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

// FromError maps an application error to the envelope using the error
// taxonomy. The message shown is the sanitized message, not the raw error.
func FromError(c *gin.Context, err error, message string) {
	Error(c, xerrors.StatusOf(err), xerrors.CodeOf(err), message)
}

// HandleError maps a service error to the envelope. Field-level validation
// errors keep their per-field messages; other client-facing errors surface
// err.Error(); internal errors hide behind the fallback so database detail
// never leaks.
func HandleError(c *gin.Context, err error, fallback string) {
	var verrs validators.ValidationErrors
	if errors.As(err, &verrs) {
		ValidationError(c, verrs.Error())
		return
	}

	message := fallback
	if xerrors.CodeOf(err) != xerrors.CodeInternal {
		message = err.Error()
	}
	Error(c, xerrors.StatusOf(err), xerrors.CodeOf(err), message)
}

// ValidationError sends a 400 Bad Request response for invalid input.
func ValidationError(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, xerrors.CodeValidation, message)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, xerrors.CodeUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, xerrors.CodeForbidden, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, xerrors.CodeNotFound, message)
}
