package routes

import (
	"github.com/gin-gonic/gin"

	"chambers/internal/interfaces/http/handlers"
	"chambers/internal/interfaces/http/middleware"
)

// CalendarRouteConfig holds dependencies for calendar routes.
type CalendarRouteConfig struct {
	CalendarHandler *handlers.CalendarHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCalendarRoutes configures firm calendar routes.
func SetupCalendarRoutes(engine *gin.Engine, cfg *CalendarRouteConfig) {
	events := engine.Group("/calendar/events")
	events.Use(cfg.AuthMiddleware.RequireAuth())
	{
		events.GET("", cfg.CalendarHandler.ListEvents)
		events.POST("", cfg.CalendarHandler.CreateEvent)
	}
}
