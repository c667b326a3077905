package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func ContentRoutes(r *gin.Engine) {
	banners := r.Group("/banners")
	banners.Use(middleware.RequireAuth())
	{
		banners.GET("", controllers.ListBanners)
		banners.POST("", middleware.RequirePermission("/addbanner", middleware.CapCreate), controllers.CreateBanner)
		banners.DELETE("/:id", middleware.RequirePermission("/addbanner", middleware.CapDelete), controllers.DeleteBanner)
	}

	gallery := r.Group("/gallery")
	gallery.Use(middleware.RequireAuth())
	{
		gallery.GET("", controllers.ListGallery)
		gallery.POST("", middleware.RequirePermission("/gallery", middleware.CapCreate), controllers.CreateGalleryItem)
		gallery.DELETE("/:id", middleware.RequirePermission("/gallery", middleware.CapDelete), controllers.DeleteGalleryItem)
	}

	faculty := r.Group("/faculty")
	faculty.Use(middleware.RequireAuth())
	{
		faculty.GET("", controllers.ListFaculty)
		faculty.POST("", middleware.RequirePermission("/faculty", middleware.CapCreate), controllers.CreateFaculty)
		faculty.DELETE("/:id", middleware.RequirePermission("/faculty", middleware.CapDelete), controllers.DeleteFaculty)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middleware.RequireAuth())
	{
		notifications.GET("", controllers.ListNotifications)
		notifications.POST("", middleware.RequirePermission("/notifications", middleware.CapCreate), controllers.CreateNotification)
		notifications.DELETE("/:id", middleware.RequirePermission("/notifications", middleware.CapDelete), controllers.DeleteNotification)
	}

	posts := r.Group("/posts")
	posts.Use(middleware.RequireAuth())
	{
		posts.GET("", controllers.ListLatestPosts)
		posts.POST("", middleware.RequirePermission("/posts", middleware.CapCreate), controllers.CreateLatestPost)
		posts.DELETE("/:id", middleware.RequirePermission("/posts", middleware.CapDelete), controllers.DeleteLatestPost)
	}
}
