package repository

import (
	"context"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
)

// SystemRepository определяет методы для работы с хранилищем солнечных систем
type SystemRepository interface {
	// GetByID возвращает систему по ID или (nil, nil), если записи нет
	GetByID(ctx context.Context, systemID int64) (*domain.SolarSystem, error)

	// Insert сохраняет новую систему; конфликт по ID возвращает ErrSystemExists
	Insert(ctx context.Context, system *domain.SolarSystem) error

	// Touch обновляет last_update существующей записи
	Touch(ctx context.Context, systemID int64) error
}
