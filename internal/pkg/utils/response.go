package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
)

// ErrorResponse - тело любого ошибочного ответа API
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendSuccess отправляет тело ответа как есть, без обёртки
func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// SendError отправляет ошибку клиенту. Наружу уходит только
// безопасное сообщение; детали остаются в логах.
func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
	})
}
