package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func PermissionRoutes(r *gin.Engine) {
	// The registry and matrix are fetched once per session by every
	// authenticated client; only editing is gated.
	pages := r.Group("/pages")
	pages.Use(middleware.RequireAuth())
	{
		pages.GET("", controllers.ListPages)
		pages.POST("", middleware.RequirePermission("/managepages", middleware.CapCreate), controllers.CreatePage)
		pages.PUT("/:id", middleware.RequirePermission("/managepages", middleware.CapUpdate), controllers.UpdatePage)
		pages.DELETE("/:id", middleware.RequirePermission("/managepages", middleware.CapDelete), controllers.DeletePage)
	}

	perms := r.Group("/permissions")
	perms.Use(middleware.RequireAuth())
	{
		perms.GET("", controllers.ListPermissions)
		perms.POST("/save", middleware.RequirePermission("/permissions", middleware.CapCreate), controllers.SavePermissions)
	}
}
