package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "campusguard/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler          *authhandlers.AuthHandler
	LoginRateLimiter     gin.HandlerFunc
	RegisterRateLimiter  gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	authGroup := engine.Group("/api/auth")
	{
		register := []gin.HandlerFunc{}
		if config.RegisterRateLimiter != nil {
			register = append(register, config.RegisterRateLimiter)
		}
		register = append(register, config.AuthHandler.Register)
		authGroup.POST("/register", register...)

		login := []gin.HandlerFunc{}
		if config.LoginRateLimiter != nil {
			login = append(login, config.LoginRateLimiter)
		}
		login = append(login, config.AuthHandler.Login)
		authGroup.POST("/login", login...)
	}
}
