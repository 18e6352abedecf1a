// internal/app/router.go
package app

import (
	"voltride-service/internal/domain/admin"
	authHandler "voltride-service/internal/handlers/auth"
	blogHandler "voltride-service/internal/handlers/blog"
	bookingHandler "voltride-service/internal/handlers/booking"
	catalogHandler "voltride-service/internal/handlers/catalog"
	dashboardHandler "voltride-service/internal/handlers/dashboard"
	dealerHandler "voltride-service/internal/handlers/dealer"
	faqHandler "voltride-service/internal/handlers/faq"
	leadHandler "voltride-service/internal/handlers/lead"
	toolsHandler "voltride-service/internal/handlers/tools"
	wsHandler "voltride-service/internal/handlers/ws"
	"voltride-service/internal/middleware"
	"voltride-service/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Lead      *leadHandler.LeadHandler
	Booking   *bookingHandler.BookingHandler
	Catalog   *catalogHandler.CatalogHandler
	Dealer    *dealerHandler.DealerHandler
	Blog      *blogHandler.BlogHandler
	FAQ       *faqHandler.FAQHandler
	Auth      *authHandler.AuthHandler
	Dashboard *dashboardHandler.DashboardHandler
	Tools     *toolsHandler.ToolsHandler
	WS        *wsHandler.WebSocketHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *session.RateLimiter
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api")

	// ==================== Health ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "voltride"})
	})

	// ==================== Public catalog ====================
	api.GET("/models", h.Catalog.ListPublic)
	api.GET("/models/compare", h.Catalog.Compare)
	api.GET("/models/:slug", h.Catalog.GetPublicBySlug)

	// ==================== Public content ====================
	api.GET("/dealers", h.Dealer.ListActive)
	api.GET("/blog", h.Blog.ListPublished)
	api.GET("/blog/:slug", h.Blog.GetPublishedBySlug)
	api.GET("/faqs", h.FAQ.ListActive)
	api.GET("/tools/savings", h.Tools.Savings)
	api.GET("/bookings/slots", h.Booking.Slots)

	// ==================== Public intake (rate limited) ====================
	api.POST("/leads",
		middleware.FormRateLimit(h.RateLimiter, "lead", logger),
		h.Lead.Submit)
	api.POST("/bookings",
		middleware.FormRateLimit(h.RateLimiter, "booking", logger),
		h.Booking.Submit)

	// ==================== Admin auth ====================
	api.POST("/admin/auth/login", h.Auth.Login)

	// ==================== Admin (authenticated) ====================
	adm := api.Group("/admin")
	adm.Use(h.AuthMiddleware.Auth())
	adm.Use(h.AuthMiddleware.RequireRole(admin.RoleAdmin, admin.RoleSuperAdmin))
	{
		adm.POST("/auth/logout", h.Auth.Logout)
		adm.GET("/auth/me", h.Auth.Me)

		adm.GET("/dashboard", h.Dashboard.Overview)

		adm.GET("/leads", h.Lead.List)
		adm.GET("/leads/:id", h.Lead.Get)
		adm.PATCH("/leads", h.Lead.UpdateStatus)
		adm.DELETE("/leads/:id", h.Lead.Delete)

		adm.GET("/bookings", h.Booking.List)
		adm.GET("/bookings/:id", h.Booking.Get)
		adm.PATCH("/bookings", h.Booking.UpdateStatus)
		adm.DELETE("/bookings/:id", h.Booking.Delete)

		adm.GET("/models", h.Catalog.List)
		adm.GET("/models/:id", h.Catalog.Get)
		adm.POST("/models", h.Catalog.Create)
		adm.PUT("/models/:id", h.Catalog.Update)
		adm.PATCH("/models", h.Catalog.UpdateStatus)
		adm.DELETE("/models/:id", h.Catalog.Delete)

		adm.GET("/dealers", h.Dealer.List)
		adm.GET("/dealers/:id", h.Dealer.Get)
		adm.POST("/dealers", h.Dealer.Create)
		adm.PUT("/dealers/:id", h.Dealer.Update)
		adm.DELETE("/dealers/:id", h.Dealer.Delete)

		adm.GET("/blog", h.Blog.List)
		adm.GET("/blog/:id", h.Blog.Get)
		adm.POST("/blog", h.Blog.Create)
		adm.PUT("/blog/:id", h.Blog.Update)
		adm.PATCH("/blog", h.Blog.SetPublished)
		adm.DELETE("/blog/:id", h.Blog.Delete)

		adm.GET("/faqs", h.FAQ.List)
		adm.GET("/faqs/:id", h.FAQ.Get)
		adm.POST("/faqs", h.FAQ.Create)
		adm.PUT("/faqs/:id", h.FAQ.Update)
		adm.DELETE("/faqs/:id", h.FAQ.Delete)
	}

	// ==================== Admin activity feed ====================
	r.GET("/ws/admin", h.WS.HandleConnection)
}
