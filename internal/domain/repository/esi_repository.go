package repository

import (
	"context"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
)

// ESIRepository определяет методы для работы с EVE Swagger Interface
type ESIRepository interface {
	// GetSystem возвращает данные солнечной системы из ESI
	GetSystem(ctx context.Context, systemID int64) (*domain.SolarSystem, error)
}
