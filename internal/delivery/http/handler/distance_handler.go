package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/utils"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/validator"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase/dto"
)

// DistanceHandler - обработчик расчета расстояния между системами
type DistanceHandler struct {
	distanceUC *usecase.DistanceUseCase
	logger     *zap.Logger
}

// NewDistanceHandler - создание нового DistanceHandler
func NewDistanceHandler(distanceUC *usecase.DistanceUseCase, logger *zap.Logger) *DistanceHandler {
	return &DistanceHandler{
		distanceUC: distanceUC,
		logger:     logger,
	}
}

// distanceBody - тело POST запроса. Указатели отличают пропущенный
// параметр от нулевого значения.
type distanceBody struct {
	SystemID1 *int64 `json:"system_id_1"`
	SystemID2 *int64 `json:"system_id_2"`
}

// CalculateGET godoc
// @Summary Расстояние между двумя системами
// @Description Вычисляет евклидово расстояние между двумя солнечными системами EVE Online в метрах и световых годах. Координаты берутся из локального хранилища; при промахе запрашиваются в ESI и сохраняются.
// @Tags Distance
// @Produce json
// @Param system_id_1 query int true "ID первой системы (30000000-31000000)"
// @Param system_id_2 query int true "ID второй системы (30000000-31000000)"
// @Success 200 {object} dto.DistanceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /calculate-distance [get]
func (h *DistanceHandler) CalculateGET(c *fiber.Ctx) error {
	rawID1 := c.Query("system_id_1")
	rawID2 := c.Query("system_id_2")

	if rawID1 == "" || rawID2 == "" {
		return utils.SendError(c, errRequired())
	}

	id1, err1 := strconv.ParseInt(rawID1, 10, 64)
	id2, err2 := strconv.ParseInt(rawID2, 10, 64)
	if err1 != nil || err2 != nil {
		return utils.SendError(c, errNotInteger())
	}

	return h.calculate(c, dto.DistanceRequest{SystemID1: id1, SystemID2: id2})
}

// CalculatePOST godoc
// @Summary Расстояние между двумя системами (JSON)
// @Description То же, что GET /calculate-distance, но с параметрами в теле запроса.
// @Tags Distance
// @Accept json
// @Produce json
// @Param request body dto.DistanceRequest true "ID двух систем"
// @Success 200 {object} dto.DistanceResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /calculate-distance [post]
func (h *DistanceHandler) CalculatePOST(c *fiber.Ctx) error {
	var body distanceBody
	if err := c.BodyParser(&body); err != nil {
		if len(c.Body()) == 0 {
			return utils.SendError(c, errRequired())
		}
		return utils.SendError(c, errNotInteger())
	}

	if body.SystemID1 == nil || body.SystemID2 == nil {
		return utils.SendError(c, errRequired())
	}

	return h.calculate(c, dto.DistanceRequest{SystemID1: *body.SystemID1, SystemID2: *body.SystemID2})
}

func (h *DistanceHandler) calculate(c *fiber.Ctx, req dto.DistanceRequest) error {
	// Валидация диапазона до любых обращений к хранилищу и ESI
	if err := validator.Validate(&req); err != nil {
		h.logger.Debug("validation failed",
			zap.Int64("system_id_1", req.SystemID1),
			zap.Int64("system_id_2", req.SystemID2),
			zap.Error(err))
		return utils.SendError(c, errOutOfRange(req))
	}

	result, err := h.distanceUC.Calculate(c.Context(), req.SystemID1, req.SystemID2)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

func errRequired() *errors.AppError {
	return errors.New(
		"INVALID_REQUEST",
		"Both system_id_1 and system_id_2 are required",
		fiber.StatusBadRequest,
	)
}

func errNotInteger() *errors.AppError {
	return errors.New(
		"INVALID_REQUEST",
		"System IDs must be valid integers",
		fiber.StatusBadRequest,
	)
}

// errOutOfRange называет первый параметр, вышедший за допустимый диапазон
func errOutOfRange(req dto.DistanceRequest) *errors.AppError {
	params := []struct {
		name string
		id   int64
	}{
		{"system_id_1", req.SystemID1},
		{"system_id_2", req.SystemID2},
	}

	for _, p := range params {
		if !domain.ValidSystemID(p.id) {
			return errors.New(
				"INVALID_REQUEST",
				fmt.Sprintf("%s must be between %d and %d", p.name, domain.MinSystemID, domain.MaxSystemID),
				fiber.StatusBadRequest,
			)
		}
	}

	return errors.ErrInvalidRequest
}
