package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/revams/api/docs" // registers the swagger spec
	"github.com/revams/api/internal/app/controllers"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Student    *controllers.StudentController
	Event      *controllers.EventController
	Attendance *controllers.AttendanceController
	Payable    *controllers.PayableController
	Reference  *controllers.ReferenceController
	OrgChart   *controllers.OrgChartController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DefaultModelsExpandDepth(1)))

	api := router.Group("/api")

	students := api.Group("/students")
	{
		students.GET("", c.Student.ListStudents)
		students.POST("", c.Student.CreateStudent)
		students.GET("/:id", c.Student.GetStudent)
		students.PATCH("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
		students.GET("/:id/payables", c.Payable.ListStudentPayables)
		students.GET("/:id/events/:eventId/fines", c.Payable.GetFineSummary)
		students.POST("/:id/events/:eventId/fines", c.Payable.AssessFine)
	}

	events := api.Group("/events")
	{
		events.GET("", c.Event.ListEvents)
		events.POST("", c.Event.CreateEvent)
		events.GET("/:id", c.Event.GetEvent)
		events.PATCH("/:id", c.Event.UpdateEvent)
		events.DELETE("/:id", c.Event.DeleteEvent)
		events.GET("/:id/attendance-slots", c.Attendance.ListEventSlots)
		events.POST("/:id/attendance-slots", c.Attendance.CreateSlot)
	}

	slots := api.Group("/attendance-slots")
	{
		slots.GET("/:id", c.Attendance.GetSlot)
		slots.PATCH("/:id", c.Attendance.UpdateSlot)
		slots.DELETE("/:id", c.Attendance.DeleteSlot)
		slots.GET("/:id/records", c.Attendance.ListSlotRecords)
	}

	records := api.Group("/attendance-records")
	{
		records.POST("", c.Attendance.CreateRecord)
		records.GET("/:id", c.Attendance.GetRecord)
		records.DELETE("/:id", c.Attendance.DeleteRecord)
	}

	payables := api.Group("/payables")
	{
		payables.POST("", c.Payable.CreatePayable)
		payables.GET("/:id", c.Payable.GetPayable)
		payables.POST("/:id/receipts", c.Payable.AddReceipt)
	}

	api.GET("/programs", c.Reference.ListPrograms)
	api.GET("/majors", c.Reference.ListMajors)
	api.GET("/degrees", c.Reference.ListDegrees)
	api.GET("/year-levels", c.Reference.ListYearLevels)

	organizations := api.Group("/organizations")
	{
		organizations.GET("", c.Reference.ListOrganizations)

		chart := organizations.Group("/:id/org-chart")
		chart.GET("", c.OrgChart.GetChart)
		chart.POST("/nodes", c.OrgChart.AddNode)
		chart.PATCH("/nodes/:nodeId", c.OrgChart.UpdateNode)
		chart.DELETE("/nodes/:nodeId", c.OrgChart.DeleteNode)
		chart.POST("/edges", c.OrgChart.AddEdge)
		chart.DELETE("/edges/:edgeId", c.OrgChart.DeleteEdge)
		chart.PUT("/publish", c.OrgChart.SetPublished)
	}

	api.GET("/public/organizations/:id/org-chart", c.OrgChart.GetPublicChart)
}
