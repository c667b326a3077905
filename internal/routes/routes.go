package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()

	// Middleware must precede route registration to land on every handler
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	UserRoutes(r)
	PermissionRoutes(r)
	StudentRoutes(r)
	FinanceRoutes(r)
	SupplierRoutes(r)
	ContentRoutes(r)

	return r
}
