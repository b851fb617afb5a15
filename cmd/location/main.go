package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/festshare/internal/pkg/config"
	"github.com/piresc/festshare/internal/pkg/database"
	"github.com/piresc/festshare/internal/pkg/health"
	"github.com/piresc/festshare/internal/pkg/logger"
	"github.com/piresc/festshare/internal/pkg/middleware"
	natspkg "github.com/piresc/festshare/internal/pkg/nats"
	"github.com/piresc/festshare/internal/pkg/server"
	"github.com/piresc/festshare/services/location/gateway"
	"github.com/piresc/festshare/services/location/handler"
	"github.com/piresc/festshare/services/location/repository"
	"github.com/piresc/festshare/services/location/usecase"

	// zone database for containers without one
	_ "time/tzdata"
)

func main() {
	appName := "location-service"
	configs := config.InitConfig("config/location.env")

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	locationRepo := repository.NewLocationRepository(redisClient)
	referenceRepo := repository.NewReferenceRepository(postgresClient.GetDB(), redisClient,
		configs.Location.TentCacheTTL, configs.Location.FestivalLocation())

	// Initialize gateway
	locationGW := gateway.NewLocationGW(natsClient)

	// Initialize usecase
	locationUC := usecase.NewLocationUC(configs.Location, locationRepo, referenceRepo, locationGW)

	restored, err := locationUC.RestoreSessions(ctx)
	if err != nil {
		zapLogger.Warn("Starting without restored sessions", logger.Err(err))
	} else {
		zapLogger.Info("Restored sharing sessions", logger.Int("count", restored))
	}

	sweepCtx, stopSweeper := context.WithCancel(ctx)
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		locationUC.RunSweeper(sweepCtx)
	}()

	// Initialize handlers
	h := handler.NewHTTPHandler(locationUC, natsClient, redisClient.GetClient(), configs)
	if err := h.InitNATSConsumers(ctx); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, map[string]health.Checker{
		"postgres": postgresClient.Ping,
		"redis":    redisClient.Ping,
		"nats": func(context.Context) error {
			if !natsClient.IsConnected() {
				return errors.New("nats connection is not established")
			}
			return nil
		},
	})

	h.RegisterRoutes(e)

	// Components are closed in reverse order of registration
	shutdown := server.NewShutdownManager(zapLogger)
	shutdown.Register("postgres", func(context.Context) error { return postgresClient.Close() })
	shutdown.Register("redis", func(context.Context) error { return redisClient.Close() })
	shutdown.Register("nats", func(context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdown.Register("nats consumers", func(context.Context) error {
		h.StopNATSConsumers()
		return nil
	})
	shutdown.Register("session sweeper", func(ctx context.Context) error {
		stopSweeper()
		select {
		case <-sweeperDone:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, shutdownTimeout)
	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	cleanupCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdown.Shutdown(cleanupCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}
}
