// Package http wires the gin engine: middleware, handlers, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	calendarusecases "chambers/internal/application/calendar/usecases"
	endorsementusecases "chambers/internal/application/endorsement/usecases"
	matterusecases "chambers/internal/application/matter/usecases"
	"chambers/internal/infrastructure/auth"
	"chambers/internal/infrastructure/config"
	"chambers/internal/infrastructure/repository"
	"chambers/internal/interfaces/http/handlers"
	"chambers/internal/interfaces/http/middleware"
	"chambers/internal/interfaces/http/routes"
	"chambers/internal/shared/logger"
	"chambers/internal/shared/services/markdown"
	"chambers/internal/shared/utils"

	_ "chambers/docs"
)

// Router holds the configured gin engine and its route dependencies.
type Router struct {
	engine             *gin.Engine
	matterHandler      *handlers.MatterHandler
	endorsementHandler *handlers.EndorsementHandler
	calendarHandler    *handlers.CalendarHandler
	staffHandler       *handlers.StaffHandler
	authMiddleware     *middleware.AuthMiddleware
	rateLimiter        *middleware.RateLimiter
}

// NewRouter builds the router with all dependencies wired.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	matterRepo := repository.NewMatterRepository(db, log)
	eventRepo := repository.NewCalendarEventRepository(db, log)
	endorsementRepo := repository.NewEndorsementRepository(db, log)
	staffRepo := repository.NewStaffRepository(db, log)

	renderer := markdown.NewService()

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)

	matterHandler := handlers.NewMatterHandler(
		matterusecases.NewCreateMatterUseCase(matterRepo, log),
		matterusecases.NewGetMatterUseCase(matterRepo, log),
		matterusecases.NewListMattersUseCase(matterRepo, log),
	)
	endorsementHandler := handlers.NewEndorsementHandler(
		endorsementusecases.NewCreateEndorsementUseCase(endorsementRepo, matterRepo, log),
		endorsementusecases.NewListEndorsementsUseCase(endorsementRepo, matterRepo, renderer, log),
	)
	calendarHandler := handlers.NewCalendarHandler(
		calendarusecases.NewCreateEventUseCase(eventRepo, matterRepo, log),
		calendarusecases.NewListEventsUseCase(eventRepo, log),
	)
	staffHandler := handlers.NewStaffHandler(staffRepo)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient,
			cfg.RateLimit.Limit,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second)
	}

	return &Router{
		engine:             engine,
		matterHandler:      matterHandler,
		endorsementHandler: endorsementHandler,
		calendarHandler:    calendarHandler,
		staffHandler:       staffHandler,
		authMiddleware:     middleware.NewAuthMiddleware(jwtSvc, log),
		rateLimiter:        rateLimiter,
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.ErrorHandler())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	r.engine.GET("/health", func(c *gin.Context) {
		utils.OKResponse(c, gin.H{"status": "ok"})
	})
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupMatterRoutes(r.engine, &routes.MatterRouteConfig{
		MatterHandler:      r.matterHandler,
		EndorsementHandler: r.endorsementHandler,
		AuthMiddleware:     r.authMiddleware,
	})
	routes.SetupCalendarRoutes(r.engine, &routes.CalendarRouteConfig{
		CalendarHandler: r.calendarHandler,
		AuthMiddleware:  r.authMiddleware,
	})
	routes.SetupStaffRoutes(r.engine, &routes.StaffRouteConfig{
		StaffHandler:   r.staffHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying gin engine for the server to run.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
