package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/utils"
)

// RateLimit - middleware ограничения частоты запросов по IP клиента.
// prefix разводит счётчики разных окон в общем хранилище.
func RateLimit(max int, window time.Duration, prefix string, storage fiber.Storage) fiber.Handler {
	cfg := limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return prefix + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return utils.SendError(c, errors.ErrRateLimited)
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}

	return limiter.New(cfg)
}
