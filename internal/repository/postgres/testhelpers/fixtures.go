package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/echelon-research/WizardLightYearsCalculator/internal/domain"
)

// Well-known fixture systems for store tests
var (
	FixtureJita = domain.SolarSystem{
		SystemID: 30000142,
		Name:     "Jita",
		X:        -129400292875304960.0,
		Y:        61596815791300400.0,
		Z:        1720986748719556600.0,
	}

	FixturePerimeter = domain.SolarSystem{
		SystemID: 30000144,
		Name:     "Perimeter",
		X:        -138189558519784640.0,
		Y:        60723429265814160.0,
		Z:        1718712998507996800.0,
	}
)

// InsertSystem inserts a fixture row directly, bypassing the repository
func InsertSystem(ctx context.Context, db *sqlx.DB, s domain.SolarSystem) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO systems (system_id, name, x, y, z, added, last_update)
		VALUES ($1, $2, $3, $4, $5, now(), now())`,
		s.SystemID, s.Name, s.X, s.Y, s.Z,
	)
	if err != nil {
		return fmt.Errorf("insert fixture system %d: %w", s.SystemID, err)
	}
	return nil
}

// CountSystems returns the number of rows in the systems table
func CountSystems(ctx context.Context, db *sqlx.DB) (int, error) {
	var n int
	if err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM systems"); err != nil {
		return 0, fmt.Errorf("count systems: %w", err)
	}
	return n, nil
}
