package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain/repository"
	"github.com/echelon-research/WizardLightYearsCalculator/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewSystemRepositoryForTest creates a system repository with test database and logger
func NewSystemRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.SystemRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewSystemRepository(pgDB, logger)
}
