package routes

import (
	"edu_backoffice/internal/controllers"
	"edu_backoffice/internal/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/change-password", controllers.ChangePassword)
	}

	// Step-up password confirmation needs a live session.
	verify := r.Group("/auth")
	verify.Use(middleware.RequireAuth())
	{
		verify.POST("/verify-password", controllers.VerifyPassword)
	}
}
