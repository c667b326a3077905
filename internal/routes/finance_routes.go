package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func FinanceRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireAuth())
	{
		payments.GET("", controllers.ListStudentPayments)
		payments.GET("/worklist", controllers.StaffWorklist)
		payments.POST("", middleware.RequirePermission("/payments", middleware.CapCreate), controllers.CreateStudentPayment)
	}

	handovers := r.Group("/handovers")
	handovers.Use(middleware.RequireAuth())
	{
		handovers.GET("", controllers.ListHandovers)
		handovers.POST("", middleware.RequirePermission("/handover", middleware.CapCreate), controllers.CreateHandovers)
		// Legacy verification path, kept for rows imported unverified.
		handovers.PUT("/:id/verify", middleware.RequirePermission("/handover", middleware.CapUpdate), controllers.VerifyHandoverByID)
	}
}
