package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain/repository"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/pkg/errors"
)

type systemRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewSystemRepository создает новый экземпляр system repository
func NewSystemRepository(db *DB, logger *zap.Logger) repository.SystemRepository {
	return &systemRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID возвращает систему по ID или (nil, nil), если записи нет
func (r *systemRepository) GetByID(ctx context.Context, systemID int64) (*domain.SolarSystem, error) {
	query := `
		SELECT system_id, name, x, y, z, added, last_update
		FROM systems
		WHERE system_id = $1`

	var system domain.SolarSystem
	err := r.db.GetContext(ctx, &system, query, systemID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get system", zap.Int64("system_id", systemID), zap.Error(err))
		return nil, fmt.Errorf("get system %d: %w", systemID, err)
	}

	return &system, nil
}

// Insert сохраняет новую систему. ON CONFLICT DO NOTHING оставляет
// победителем параллельную запись; тогда возвращается ErrSystemExists
// и вызывающий перечитывает сохранённую строку.
func (r *systemRepository) Insert(ctx context.Context, system *domain.SolarSystem) error {
	query := `
		INSERT INTO systems (system_id, name, x, y, z, added, last_update)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (system_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, system.SystemID, system.Name, system.X, system.Y, system.Z)
	if err != nil {
		r.logger.Error("failed to insert system", zap.Int64("system_id", system.SystemID), zap.Error(err))
		return fmt.Errorf("insert system %d: %w", system.SystemID, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert system %d: rows affected: %w", system.SystemID, err)
	}
	if rows == 0 {
		return errors.ErrSystemExists
	}

	return nil
}

// Touch обновляет last_update существующей записи
func (r *systemRepository) Touch(ctx context.Context, systemID int64) error {
	query := `UPDATE systems SET last_update = now() WHERE system_id = $1`

	if _, err := r.db.ExecContext(ctx, query, systemID); err != nil {
		r.logger.Error("failed to touch system", zap.Int64("system_id", systemID), zap.Error(err))
		return fmt.Errorf("touch system %d: %w", systemID, err)
	}

	return nil
}
