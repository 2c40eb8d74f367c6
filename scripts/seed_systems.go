//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type system struct {
	ID   int64
	Name string
	X    float64
	Y    float64
	Z    float64
}

// Несколько известных систем для локальной разработки, чтобы не ходить в ESI
var seed = []system{
	{30000142, "Jita", -129400292875304960.0, 61596815791300400.0, 1720986748719556600.0},
	{30000144, "Perimeter", -138189558519784640.0, 60723429265814160.0, 1718712998507996800.0},
	{30002187, "Amarr", -195973442561864000.0, 51110606517975870.0, 165194418359680640.0},
}

func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=wizard_lightyears sslmode=disable", "PostgreSQL DSN")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	for _, s := range seed {
		_, err := db.ExecContext(ctx, `
			INSERT INTO systems (system_id, name, x, y, z, added, last_update)
			VALUES ($1, $2, $3, $4, $5, now(), now())
			ON CONFLICT (system_id) DO NOTHING`,
			s.ID, s.Name, s.X, s.Y, s.Z,
		)
		if err != nil {
			log.Fatalf("Failed to seed system %d: %v", s.ID, err)
		}
		fmt.Printf("Seeded system %d (%s)\n", s.ID, s.Name)
	}
}
