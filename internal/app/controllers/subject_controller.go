package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/models"
	"github.com/yigit/marksportal/internal/app/models/dto"
	"github.com/yigit/marksportal/internal/app/services"
	"github.com/yigit/marksportal/internal/middleware"
)

// SubjectController handles subject-related operations
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{
		subjectService: subjectService,
	}
}

// GetSubjects lists subjects
// @Summary List subjects
// @Tags subjects
// @Produce json
// @Param year query string false "Year (applies together with department)"
// @Param department query string false "Department (applies together with year)"
// @Success 200 {object} dto.SubjectListResponse
// @Router /subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	var query dto.SubjectQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	subjects, err := c.subjectService.ListSubjects(ctx.Request.Context(), models.SubjectFilter{
		Year:       query.Year,
		Department: query.Department,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SubjectListResponse{Subjects: subjects})
}

// CreateSubject handles subject creation
// @Summary Create a new subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Subject code already used for this year and department"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	id, err := c.subjectService.CreateSubject(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Subject added successfully", id))
}

// DeleteSubject deletes a subject
// @Summary Delete a subject
// @Tags subjects
// @Produce json
// @Param id path int true "Subject ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /subjects/{id} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "subject")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Subject deleted successfully"})
}
