// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// GetAdminID gets the authenticated admin's ID from context.
func GetAdminID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("admin_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// MustGetAdminID gets the admin ID from context or panics. Only call behind
// Auth().
func MustGetAdminID(c *gin.Context) int64 {
	id, ok := GetAdminID(c)
	if !ok {
		panic("admin_id not found in context")
	}
	return id
}

// GetJTI gets the token's JTI from context.
func GetJTI(c *gin.Context) (string, bool) {
	v, exists := c.Get("jti")
	if !exists {
		return "", false
	}
	jti, ok := v.(string)
	return jti, ok
}

// MustGetJTI gets the JTI from context or panics. Only call behind Auth().
func MustGetJTI(c *gin.Context) string {
	jti, ok := GetJTI(c)
	if !ok {
		panic("jti not found in context")
	}
	return jti
}

// GetRole gets the admin's role from context, or "" when unauthenticated.
func GetRole(c *gin.Context) string {
	v, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, ok := v.(string)
	if !ok {
		return ""
	}
	return role
}
