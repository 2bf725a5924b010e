package routes

import (
	"github.com/gin-gonic/gin"

	"chambers/internal/interfaces/http/handlers"
	"chambers/internal/interfaces/http/middleware"
	"chambers/internal/shared/authorization"
)

// MatterRouteConfig holds dependencies for matter and endorsement routes.
type MatterRouteConfig struct {
	MatterHandler      *handlers.MatterHandler
	EndorsementHandler *handlers.EndorsementHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// SetupMatterRoutes configures matter and endorsement routes. Every route is
// authenticated; per-matter access is enforced inside the use cases.
func SetupMatterRoutes(engine *gin.Engine, cfg *MatterRouteConfig) {
	matters := engine.Group("/matters")
	matters.Use(cfg.AuthMiddleware.RequireAuth())
	{
		matters.GET("", cfg.MatterHandler.ListMatters)
		matters.POST("", authorization.RequireAdmin(), cfg.MatterHandler.CreateMatter)
		matters.GET("/:sid", cfg.MatterHandler.GetMatter)

		matters.GET("/:sid/endorsements", cfg.EndorsementHandler.ListEndorsements)
		matters.POST("/:sid/endorsements", cfg.EndorsementHandler.CreateEndorsement)
	}
}
