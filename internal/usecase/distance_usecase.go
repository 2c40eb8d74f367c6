package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/usecase/dto"
)

// DistanceUseCase - use case расчета расстояния между двумя системами
type DistanceUseCase struct {
	systemUC *SystemUseCase
	logger   *zap.Logger
}

// NewDistanceUseCase - создание нового DistanceUseCase
func NewDistanceUseCase(systemUC *SystemUseCase, logger *zap.Logger) *DistanceUseCase {
	return &DistanceUseCase{
		systemUC: systemUC,
		logger:   logger,
	}
}

// Calculate получает обе системы и возвращает расстояние между ними
// в метрах и световых годах. Системы разрешаются последовательно,
// первая ошибка завершает запрос.
func (uc *DistanceUseCase) Calculate(ctx context.Context, systemID1, systemID2 int64) (*dto.DistanceResponse, error) {
	system1, err := uc.systemUC.Resolve(ctx, systemID1)
	if err != nil {
		return nil, err
	}

	system2, err := uc.systemUC.Resolve(ctx, systemID2)
	if err != nil {
		return nil, err
	}

	result := domain.Distance(*system1, *system2)

	uc.logger.Info("distance calculated",
		zap.Int64("system_id_1", systemID1),
		zap.Int64("system_id_2", systemID2),
		zap.Float64("distance_meters", result.Meters),
		zap.Float64("distance_lightyears", result.LightYears))

	return &dto.DistanceResponse{
		System1:            dto.SystemInfo{SystemID: system1.SystemID, Name: system1.Name},
		System2:            dto.SystemInfo{SystemID: system2.SystemID, Name: system2.Name},
		DistanceMeters:     result.Meters,
		DistanceLightYears: result.LightYears,
	}, nil
}
