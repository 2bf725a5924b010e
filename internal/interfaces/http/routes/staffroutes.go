package routes

import (
	"github.com/gin-gonic/gin"

	"chambers/internal/interfaces/http/handlers"
	"chambers/internal/interfaces/http/middleware"
)

// StaffRouteConfig holds dependencies for staff self-service routes.
type StaffRouteConfig struct {
	StaffHandler   *handlers.StaffHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupStaffRoutes configures staff device token routes.
func SetupStaffRoutes(engine *gin.Engine, cfg *StaffRouteConfig) {
	staff := engine.Group("/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth())
	{
		staff.POST("/device-tokens", cfg.StaffHandler.RegisterDeviceToken)
		staff.DELETE("/device-tokens", cfg.StaffHandler.RemoveDeviceToken)
	}
}
