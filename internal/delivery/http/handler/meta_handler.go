package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/utils"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/repository/postgres"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase/dto"
)

const serviceVersion = "1.0.0"

// MetaHandler - обработчик служебных маршрутов (описание API, health check)
type MetaHandler struct {
	db     *postgres.DB
	logger *zap.Logger
}

// NewMetaHandler - создание нового MetaHandler
func NewMetaHandler(db *postgres.DB, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		db:     db,
		logger: logger,
	}
}

// Index godoc
// @Summary Описание API
// @Description Возвращает список маршрутов и подсказку по параметрам.
// @Tags Meta
// @Produce json
// @Success 200 {object} dto.APIInfoResponse
// @Router / [get]
func (h *MetaHandler) Index(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.APIInfoResponse{
		Service: "WizardLightYearsCalculator",
		Version: serviceVersion,
		Endpoints: map[string]string{
			"GET /":                    "API info",
			"GET /health":              "service health check",
			"GET /calculate-distance":  "distance between two systems (query parameters)",
			"POST /calculate-distance": "distance between two systems (JSON body)",
			"GET /swagger/index.html":  "Swagger UI",
		},
		Usage: dto.APIUsage{
			Parameters:  []string{"system_id_1", "system_id_2"},
			ValidRange:  "30000000-31000000",
			ExampleGET:  "/calculate-distance?system_id_1=30000142&system_id_2=30000144",
			ExamplePOST: `{"system_id_1": 30000142, "system_id_2": 30000144}`,
		},
	})
}

// Health godoc
// @Summary Health check
// @Description Проверяет доступность сервиса и базы данных.
// @Tags Meta
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *MetaHandler) Health(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:   "healthy",
		Database: "connected",
	}

	if err := h.db.Health(c.Context()); err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		resp.Status = "degraded"
		resp.Database = "disconnected"
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}

	return utils.SendSuccess(c, resp)
}
