// Command api serves the Stratford music platform REST API.
//
//	@title						Stratford Music Platform API
//	@version					1.0
//	@description				Venues, events and editorial content for the Stratford live-events platform.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/stratford/music-platform/internal/api"
	"github.com/stratford/music-platform/internal/api/handler"
	"github.com/stratford/music-platform/internal/clock"
	mongodb "github.com/stratford/music-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/stratford/music-platform/internal/infrastructure/db/redis"
	"github.com/stratford/music-platform/internal/pkg/config"
	"github.com/stratford/music-platform/pkg/logger"
)

const (
	appName         = "stratford-api"
	shutdownTimeout = 10 * time.Second
)

// BuildVersion is overridden at link time with -ldflags "-X main.BuildVersion=...".
var BuildVersion = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Stratford music platform API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, BuildVersion)
		},
	})

	return cmd
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.PrettyLogs(),
		Service: appName,
		Version: cfg.Version,
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	health := map[string]handler.PingFunc{"mongodb": mongodb.Ping(client)}
	clk := clock.NewSystem()

	var rateStore echomiddleware.RateLimiterStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting per instance")
		} else {
			defer rdb.Close()
			rateStore = redisdb.NewRateLimitStore(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window, clk, logger.Component("ratelimit"))
			health["redis"] = redisdb.Ping(rdb)
		}
	}

	e, err := api.NewRouter(api.Deps{
		Config:    cfg,
		Logger:    log,
		Clock:     clk,
		Users:     mongodb.NewUserRepository(db),
		Venues:    mongodb.NewVenueRepository(db),
		Events:    mongodb.NewEventRepository(db),
		Content:   mongodb.NewContentRepository(db),
		RateStore: rateStore,
		Health:    health,
	})
	if err != nil {
		return err
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("environment", cfg.Env).Msg("api listening")
		srvErr <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received, stopping server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
