package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "campusguard/internal/interfaces/http/handlers/user"
	"campusguard/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/api/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("/search", config.UserHandler.SearchStudents)
	}
}
