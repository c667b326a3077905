package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine) {
	users := r.Group("/users")
	users.Use(middleware.RequireAuth())
	{
		users.GET("", controllers.ListUsers)
		users.GET("/:id", controllers.GetUser)
		users.POST("", middleware.RequirePermission("/users", middleware.CapCreate), controllers.CreateUser)
		users.PUT("/:id", middleware.RequirePermission("/users", middleware.CapUpdate), controllers.UpdateUser)
		users.DELETE("/:id", middleware.RequirePermission("/users", middleware.CapDelete), controllers.DeleteUser)
	}

	roles := r.Group("/roles")
	roles.Use(middleware.RequireAuth())
	{
		roles.GET("", controllers.ListRoles)
	}
}
