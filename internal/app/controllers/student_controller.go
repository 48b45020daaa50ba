package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/models/dto"
	"github.com/yigit/marksportal/internal/app/services"
	"github.com/yigit/marksportal/internal/middleware"
)

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents lists the ten most recently added students
// @Summary List students
// @Description Filters by year+department+section or year+department; any other combination lists everyone
// @Tags students
// @Produce json
// @Param year query string false "Year"
// @Param department query string false "Department"
// @Param section query string false "Section"
// @Success 200 {object} dto.StudentListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var query dto.StudentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	students, err := c.studentService.ListStudents(ctx.Request.Context(), query.ToFilter())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// GetClassRoster lists every student of one class
// @Summary Class roster
// @Tags students
// @Produce json
// @Param year query string true "Year"
// @Param department query string true "Department"
// @Param section query string true "Section"
// @Success 200 {object} dto.StudentListResponse
// @Failure 400 {object} dto.ErrorResponse "Year, department, and section are required"
// @Router /students/class [get]
func (c *StudentController) GetClassRoster(ctx *gin.Context) {
	var query dto.StudentQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	students, err := c.studentService.ListClassRoster(ctx.Request.Context(), query.ToFilter())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentListResponse{Students: students})
}

// CreateStudent handles student creation
// @Summary Create a new student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Registration number already used"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(ctx, http.StatusBadRequest, middleware.BindingErrorMessage(err))
		return
	}

	id, err := c.studentService.CreateStudent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewCreatedResponse("Student added successfully", id))
}

// DeleteStudent deletes a student and its marks
// @Summary Delete a student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "student")
	if !ok {
		return
	}

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}
