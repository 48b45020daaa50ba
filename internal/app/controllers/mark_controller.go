package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/models/dto"
	"github.com/yigit/marksportal/internal/app/services"
	"github.com/yigit/marksportal/internal/middleware"
)

// MarkController handles mark-related operations
type MarkController struct {
	markService services.MarkService
}

// NewMarkController creates a new MarkController
func NewMarkController(markService services.MarkService) *MarkController {
	return &MarkController{
		markService: markService,
	}
}

// GetMarks returns the mark sheet of one class
// @Summary Fetch marks
// @Tags marks
// @Produce json
// @Param assessment_type query string true "Assessment type"
// @Param academic_year query string true "Academic year (legacy alias: year)"
// @Param department query string true "Department"
// @Param section query string true "Section"
// @Param subject_code query string true "Subject code"
// @Success 200 {object} dto.MarkListResponse
// @Failure 400 {object} dto.ErrorResponse "Missing filters"
// @Router /marks [get]
func (c *MarkController) GetMarks(ctx *gin.Context) {
	var query dto.MarkQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	marks, err := c.markService.ListMarks(ctx.Request.Context(), query.ToFilter())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MarkListResponse{Marks: marks})
}

// SaveMarks inserts or updates a batch of marks
// @Summary Bulk upsert marks
// @Description The batch is applied atomically; a failing record rolls back the whole batch
// @Tags marks
// @Accept json
// @Produce json
// @Param request body dto.BulkMarksRequest true "Marks"
// @Success 200 {object} dto.BulkMarksResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /marks/bulk [post]
func (c *MarkController) SaveMarks(ctx *gin.Context) {
	var req dto.BulkMarksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	saved, err := c.markService.SaveMarks(ctx.Request.Context(), req.ToModels())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BulkMarksResponse{
		Message: "All marks saved successfully",
		Saved:   saved,
	})
}
