// internal/handlers/auth/auth.go
package auth

import (
	"net/http"

	"voltride-service/internal/domain/admin"
	"voltride-service/internal/middleware"
	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.Service
}

func NewAuthHandler(authService *service.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an admin and opens a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "email and password are required")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.HandleError(c, err, "login failed")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Logout revokes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)
	jti := middleware.MustGetJTI(c)

	if err := h.authService.Logout(c.Request.Context(), adminID, jti); err != nil {
		response.HandleError(c, err, "logout failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Me returns the authenticated admin's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	adminID := middleware.MustGetAdminID(c)

	a, err := h.authService.Me(c.Request.Context(), adminID)
	if err != nil {
		response.HandleError(c, err, "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, a)
}
