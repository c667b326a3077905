package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func SupplierRoutes(r *gin.Engine) {
	suppliers := r.Group("/suppliers")
	suppliers.Use(middleware.RequireAuth())
	{
		suppliers.GET("", controllers.ListSuppliers)
		suppliers.GET("/:id", controllers.GetSupplier)
		suppliers.POST("", middleware.RequirePermission("/suppliers", middleware.CapCreate), controllers.CreateSupplier)
		suppliers.PUT("/:id", middleware.RequirePermission("/suppliers", middleware.CapUpdate), controllers.UpdateSupplier)
		suppliers.DELETE("/:id", middleware.RequirePermission("/suppliers", middleware.CapDelete), controllers.DeleteSupplier)

		suppliers.POST("/:id/expenses", middleware.RequirePermission("/suppliers", middleware.CapCreate), controllers.CreateSupplierExpense)
	}

	expenses := r.Group("/expenses")
	expenses.Use(middleware.RequireAuth())
	{
		expenses.GET("", controllers.ListExpenseSummary)
		expenses.POST("/:id/payments", middleware.RequirePermission("/suppliers", middleware.CapCreate), controllers.RecordExpensePayment)
	}
}
