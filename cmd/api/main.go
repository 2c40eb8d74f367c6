package main

// @title WizardLightYearsCalculator API
// @version 1.0.0
// @description Сервис расчета расстояний между солнечными системами EVE Online. Принимает два ID систем, берет координаты из локального хранилища (при промахе запрашивает EVE Swagger Interface и сохраняет результат) и возвращает евклидово расстояние в метрах и световых годах.
// @description
// @description Особенности:
// @description - Постоянное кеширование координат в PostgreSQL
// @description - Не больше одного запроса к ESI на system_id одновременно
// @description - Ограничение частоты запросов по IP (минутное и часовое окно)

// @contact.name API Support
// @contact.email support@echelon-research.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	_ "github.com/echelon-research/WizardLightYearsCalculator/docs"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/config"
	httpDelivery "github.com/echelon-research/WizardLightYearsCalculator/internal/delivery/http"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/delivery/http/handler"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/infrastructure/esi"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/logger"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/repository/cache"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/repository/postgres"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting WizardLightYearsCalculator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("esi_base_url", cfg.ESI.BaseURL),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Ensure database schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// 5. Connect to Redis when the rate limiter needs shared storage
	var limiterStorage fiber.Storage
	if cfg.RateLimit.Enabled && cfg.RateLimit.Storage == "redis" {
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		limiterStorage = cache.NewLimiterStorage(redisClient, "ratelimit")
		log.Info("Redis limiter storage initialized")
	}

	// 6. Initialize Repositories
	systemRepo := postgres.NewSystemRepository(db, log)
	esiClient := esi.NewESIClient(&cfg.ESI, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	systemUC := usecase.NewSystemUseCase(systemRepo, esiClient, log)
	distanceUC := usecase.NewDistanceUseCase(systemUC, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	distanceHandler := handler.NewDistanceHandler(distanceUC, log)
	metaHandler := handler.NewMetaHandler(db, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		distanceHandler,
		metaHandler,
		limiterStorage,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
