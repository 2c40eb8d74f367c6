package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/config"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/delivery/http/handler"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/delivery/http/middleware"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/utils"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	distanceHandler *handler.DistanceHandler
	metaHandler     *handler.MetaHandler

	// Хранилище счётчиков rate limiter; nil означает память процесса
	limiterStorage fiber.Storage
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	distanceHandler *handler.DistanceHandler,
	metaHandler *handler.MetaHandler,
	limiterStorage fiber.Storage,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:     "WizardLightYearsCalculator",
		ReadTimeout: 10 * time.Second,
		// Запрос может ждать два похода в ESI по 10 секунд каждый
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		distanceHandler: distanceHandler,
		metaHandler:     metaHandler,
		limiterStorage:  limiterStorage,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if s.config.RateLimit.Enabled {
		// Общий часовой лимит на весь API
		s.app.Use(middleware.RateLimit(s.config.RateLimit.PerHour, time.Hour, "hour", s.limiterStorage))
	}
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// API info
	s.app.Get("/", s.metaHandler.Index)

	// Health check
	s.app.Get("/health", s.metaHandler.Health)

	// Distance routes: минутный лимит только на расчётные маршруты
	calculate := s.app.Group("/calculate-distance")
	if s.config.RateLimit.Enabled {
		calculate.Use(middleware.RateLimit(s.config.RateLimit.PerMinute, time.Minute, "minute", s.limiterStorage))
	}
	calculate.Get("", s.distanceHandler.CalculateGET)
	calculate.Post("", s.distanceHandler.CalculatePOST)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок. Наружу уходит
// только безопасное сообщение, подробности остаются в логах.
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := errors.ErrInternalServer.Message

		if appErr, ok := err.(*errors.AppError); ok {
			code = appErr.StatusCode
			message = appErr.Message
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: message,
		})
	}
}
