package usecase

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain/repository"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
)

// SystemUseCase - use case получения солнечной системы по принципу fetch-or-cache
type SystemUseCase struct {
	systemRepo repository.SystemRepository
	esiRepo    repository.ESIRepository
	logger     *zap.Logger
	group      singleflight.Group
}

// NewSystemUseCase - создание нового SystemUseCase
func NewSystemUseCase(
	systemRepo repository.SystemRepository,
	esiRepo repository.ESIRepository,
	logger *zap.Logger,
) *SystemUseCase {
	return &SystemUseCase{
		systemRepo: systemRepo,
		esiRepo:    esiRepo,
		logger:     logger,
	}
}

// Resolve возвращает систему из хранилища; при промахе запрашивает её
// в ESI, сохраняет и перечитывает сохранённую запись. Наружу всегда
// уходит строка из хранилища, не значение из памяти.
func (uc *SystemUseCase) Resolve(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	system, err := uc.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, err
	}

	if system != nil {
		// Попадание: обновляем last_update, сбой не фатален для запроса
		if err := uc.systemRepo.Touch(ctx, systemID); err != nil {
			uc.logger.Warn("failed to touch system", zap.Int64("system_id", systemID), zap.Error(err))
		}
		uc.logger.Debug("system served from store", zap.Int64("system_id", systemID))
		return system, nil
	}

	// Промах: не больше одного запроса к ESI на system_id одновременно,
	// параллельные вызовы получают общий результат
	v, err, shared := uc.group.Do(strconv.FormatInt(systemID, 10), func() (interface{}, error) {
		return uc.fetchAndStore(ctx, systemID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		uc.logger.Debug("resolution shared with concurrent caller", zap.Int64("system_id", systemID))
	}

	return v.(*domain.SolarSystem), nil
}

func (uc *SystemUseCase) fetchAndStore(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	fetched, err := uc.esiRepo.GetSystem(ctx, systemID)
	if err != nil {
		// Ошибки ESI уже классифицированы клиентом, здесь не переосмысляются
		return nil, err
	}

	if err := uc.systemRepo.Insert(ctx, fetched); err != nil {
		if err != errors.ErrSystemExists {
			return nil, err
		}
		// Параллельный процесс сохранил систему раньше, перечитываем его запись
		uc.logger.Debug("system already stored by concurrent writer", zap.Int64("system_id", systemID))
	}

	stored, err := uc.systemRepo.GetByID(ctx, systemID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		uc.logger.Error("system missing right after insert", zap.Int64("system_id", systemID))
		return nil, errors.ErrStoreInconsistent
	}

	uc.logger.Info("system cached from ESI",
		zap.Int64("system_id", stored.SystemID),
		zap.String("name", stored.Name))

	return stored, nil
}
