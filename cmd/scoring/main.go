package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/driveshield/telematics/internal/pkg/config"
	"github.com/driveshield/telematics/internal/pkg/database"
	"github.com/driveshield/telematics/internal/pkg/logger"
	"github.com/driveshield/telematics/internal/pkg/middleware"
	nsqpkg "github.com/driveshield/telematics/internal/pkg/nsq"
	"github.com/driveshield/telematics/internal/pkg/server"
	"github.com/driveshield/telematics/services/scoring/gateway"
	"github.com/driveshield/telematics/services/scoring/handler"
	"github.com/driveshield/telematics/services/scoring/repository"
	"github.com/driveshield/telematics/services/scoring/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "."
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := "info"
	if cfg.App.Debug {
		logLevel = "debug"
	}
	zapLogger, err := logger.NewZapLogger(logger.Config{Level: logLevel})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger.SetGlobalLogger(zapLogger)
	defer zapLogger.Close()

	// Initialize PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(cfg.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	// Initialize repositories
	tripRepo := repository.NewTripRepo(db)
	recentRepo := repository.NewRecentTripRepo(redisClient)

	// Initialize gateway
	scoringGW := gateway.NewScoringGW(producer, cfg.NSQ)

	// Initialize usecase
	scoringUC := usecase.NewScoringUC(cfg, tripRepo, recentRepo, scoringGW)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.EchoMiddleware(zapLogger))

	httpHandler := handler.NewHTTPHandler(scoringUC, cfg)
	httpHandler.RegisterRoutes(e)

	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		return db.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown completed with errors", logger.Err(err))
	}
}
