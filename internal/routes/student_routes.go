package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func StudentRoutes(r *gin.Engine) {
	students := r.Group("/students")
	students.Use(middleware.RequireAuth())
	{
		students.GET("", controllers.ListStudents)
		students.GET("/:id", controllers.GetStudent)
		students.POST("", middleware.RequirePermission("/students", middleware.CapCreate), controllers.CreateStudent)
		students.PUT("/:id", middleware.RequirePermission("/students", middleware.CapUpdate), controllers.UpdateStudent)
		students.DELETE("/:id", middleware.RequirePermission("/students", middleware.CapDelete), controllers.DeleteStudent)

		students.POST("/:id/academics", middleware.RequirePermission("/students", middleware.CapCreate), controllers.AddAcademicDetail)
		students.POST("/:id/documents", middleware.RequirePermission("/students", middleware.CapCreate), controllers.UploadStudentDocument)
	}

	emis := r.Group("/emis")
	emis.Use(middleware.RequireAuth())
	{
		emis.POST("", middleware.RequirePermission("/students", middleware.CapCreate), controllers.AddEMIDetail)
	}
}
