// internal/handlers/dashboard/dashboard.go
package dashboard

import (
	"net/http"

	"voltride-service/internal/pkg/response"
	service "voltride-service/internal/service/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.Service
}

func NewDashboardHandler(dashboardService *service.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Overview returns the back-office landing aggregates.
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		response.HandleError(c, err, "failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, overview)
}
