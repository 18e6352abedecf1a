// internal/handlers/tools/tools.go
package tools

import (
	"net/http"
	"strconv"

	"voltride-service/internal/pkg/response"
	"voltride-service/internal/utils"

	"github.com/gin-gonic/gin"
)

type ToolsHandler struct{}

func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// Savings computes the petrol-vs-electric running cost comparison for
// ?daily_km=N.
func (h *ToolsHandler) Savings(c *gin.Context) {
	raw := c.DefaultQuery("daily_km", "30")
	dailyKm, err := strconv.ParseFloat(raw, 64)
	if err != nil || dailyKm < 0 || dailyKm > 1000 {
		response.ValidationError(c, "daily_km must be a number between 0 and 1000")
		return
	}

	savings := utils.CalculateSavings(dailyKm)
	response.Success(c, http.StatusOK, gin.H{
		"savings":                 savings,
		"monthly_savings_display": utils.FormatINR(savings.MonthlySavings),
		"annual_savings_display":  utils.FormatINR(savings.AnnualSavings),
	})
}
