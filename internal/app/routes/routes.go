package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/marksportal/internal/app/controllers"
)

// Controllers groups every handler the router mounts
type Controllers struct {
	Student  *controllers.StudentController
	Subject  *controllers.SubjectController
	Mark     *controllers.MarkController
	Report   *controllers.ReportController
	Frontend *controllers.FrontendController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.GET("", c.Student.GetStudents)
		students.GET("/class", c.Student.GetClassRoster)
		students.POST("", c.Student.CreateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	subjects := api.Group("/subjects")
	{
		subjects.GET("", c.Subject.GetSubjects)
		subjects.POST("", c.Subject.CreateSubject)
		subjects.DELETE("/:id", c.Subject.DeleteSubject)
	}

	marks := api.Group("/marks")
	{
		marks.GET("", c.Mark.GetMarks)
		marks.POST("/bulk", c.Mark.SaveMarks)
	}

	api.GET("/dashboard/stats", c.Report.GetDashboardStats)
	api.GET("/reports/performance", c.Report.GetPerformanceReport)

	// Everything else falls through to the frontend
	router.NoRoute(c.Frontend.NoRoute)
}
