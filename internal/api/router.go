package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/stratford/music-platform/docs"
	"github.com/stratford/music-platform/internal/api/handler"
	"github.com/stratford/music-platform/internal/api/middleware"
	"github.com/stratford/music-platform/internal/api/respond"
	"github.com/stratford/music-platform/internal/clock"
	"github.com/stratford/music-platform/internal/core/domain"
	"github.com/stratford/music-platform/internal/core/ports"
	"github.com/stratford/music-platform/internal/core/service"
	"github.com/stratford/music-platform/internal/pkg/config"
	"github.com/stratford/music-platform/internal/security"
)

const bodyLimit = "10M"

// Deps is everything the router needs from the outside world.
type Deps struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Clock   clock.Clock
	Users   ports.UserRepository
	Venues  ports.VenueRepository
	Events  ports.EventRepository
	Content ports.ContentRepository

	// RateStore backs the per-IP limiter. Nil selects an in-process store.
	RateStore echomiddleware.RateLimiterStore
	// Health maps dependency names to readiness probes.
	Health map[string]handler.PingFunc
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) (*echo.Echo, error) {
	cfg := d.Config
	if d.Clock == nil {
		d.Clock = clock.NewSystem()
	}

	// --- Services ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, service.TokenTTL, d.Clock)
	if err != nil {
		return nil, err
	}
	clean := security.NewTextSanitizer()
	authService := service.NewAuthService(d.Users, tokens, clean, d.Clock, d.Logger.With().Str("component", "auth_service").Logger())
	userService := service.NewUserService(d.Users, clean, d.Clock, d.Logger.With().Str("component", "user_service").Logger())
	venueService := service.NewVenueService(d.Venues, d.Events, d.Users, clean, d.Clock, d.Logger.With().Str("component", "venue_service").Logger())
	eventService := service.NewEventService(d.Events, d.Venues, clean, d.Clock, cfg.Location(), d.Logger.With().Str("component", "event_service").Logger())
	contentService := service.NewContentService(d.Content, d.Users, d.Logger.With().Str("component", "content_service").Logger())

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	venueHandler := handler.NewVenueHandler(venueService)
	eventHandler := handler.NewEventHandler(eventService)
	contentHandler := handler.NewContentHandler(contentService)
	healthHandler := handler.NewHealthHandler(cfg.Env, cfg.Version, d.Clock, d.Health)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = respond.NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(requestLogger(d.Logger.With().Str("component", "http").Logger()))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echomiddleware.BodyLimit(bodyLimit))

	promCfg := echoprometheus.MiddlewareConfig{Namespace: "stratford"}
	metricsHandler := echoprometheus.NewHandler()
	if d.Registry != nil {
		promCfg.Registerer = d.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Registry})
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	rateStore := d.RateStore
	if rateStore == nil {
		rateStore = middleware.NewMemoryRateStore(cfg.RateLimit.Max, cfg.RateLimit.Window)
	}

	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", middleware.RateLimit(rateStore))
	authenticate := middleware.Authenticate(tokens, d.Users)
	venueOrAdmin := middleware.RequireRole(domain.RoleVenue, domain.RoleAdmin)

	// --- Health probes (no auth required) ---
	api.GET("/health", healthHandler.Liveness)
	api.GET("/health/ready", healthHandler.Readiness)

	// --- Auth routes ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/me", authHandler.Me, authenticate)
	auth.PUT("/me", authHandler.UpdateMe, authenticate)

	api.GET("/users", userHandler.List, authenticate, middleware.RequireRole(domain.RoleAdmin))

	venues := api.Group("/venues")
	venues.GET("", venueHandler.List)
	venues.GET("/mine", venueHandler.Mine, authenticate, middleware.RequireVenueOwnership(d.Venues))
	venues.GET("/:id", venueHandler.Get)
	venues.POST("", venueHandler.Create, authenticate)
	venues.PUT("/:id", venueHandler.Update, authenticate)
	venues.DELETE("/:id", venueHandler.Delete, authenticate)

	events := api.Group("/events")
	events.GET("", eventHandler.List)
	events.GET("/today", eventHandler.Today)
	events.GET("/:id", eventHandler.Get)
	events.POST("", eventHandler.Create, authenticate, venueOrAdmin)
	events.PUT("/:id", eventHandler.Update, authenticate, venueOrAdmin)
	events.DELETE("/:id", eventHandler.Delete, authenticate, venueOrAdmin)

	api.GET("/magazine/issues", contentHandler.Issues)
	api.GET("/magazine/issues/:id", contentHandler.Issue)
	api.GET("/playlists", contentHandler.Playlists)
	api.GET("/playlists/:id", contentHandler.Playlist)
	api.GET("/advertisements", contentHandler.Advertisements)

	return e, nil
}

// requestLogger writes one line per request once the error handler has set
// the final status.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
