package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/selorm/scholarbase/internal/app/services"
	"github.com/selorm/scholarbase/internal/middleware"
)

// DashboardController serves portal-wide aggregates
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetStats godoc
// @Summary Get dashboard statistics
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardStatsResponse}
// @Router /dashboard/stats [get]
func (c *DashboardController) GetStats(ctx *gin.Context) {
	stats, err := c.dashboardService.GetStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okResponse(ctx, stats)
}

// GetActivity godoc
// @Summary Get recent portal activity
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardActivityResponse}
// @Router /dashboard/activity [get]
func (c *DashboardController) GetActivity(ctx *gin.Context) {
	activity, err := c.dashboardService.GetActivity(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	okResponse(ctx, activity)
}
