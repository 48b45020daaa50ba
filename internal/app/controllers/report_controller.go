package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/models/dto"
	"github.com/yigit/marksportal/internal/app/services"
	"github.com/yigit/marksportal/internal/middleware"
)

// ReportController serves the dashboard and the performance report
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GetDashboardStats returns the row counts of every table
// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 400 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *ReportController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.reportService.DashboardStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GetPerformanceReport returns the pass/fail breakdown by student category
// @Summary Performance report
// @Description section=all spans every section of the department
// @Tags reports
// @Produce json
// @Param assessment_type query string true "Assessment type"
// @Param academic_year query string true "Academic year (legacy alias: year)"
// @Param department query string true "Department"
// @Param section query string true "Section or all"
// @Param subject_code query string true "Subject code"
// @Success 200 {object} models.PerformanceReport
// @Failure 400 {object} dto.ErrorResponse
// @Router /reports/performance [get]
func (c *ReportController) GetPerformanceReport(ctx *gin.Context) {
	var query dto.MarkQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	report, err := c.reportService.PerformanceReport(ctx.Request.Context(), query.ToReportFilter())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
