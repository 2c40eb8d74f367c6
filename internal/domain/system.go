package domain

import "time"

const (
	// MinSystemID и MaxSystemID задают допустимый диапазон ID солнечных систем (включительно)
	MinSystemID int64 = 30000000
	MaxSystemID int64 = 31000000
)

// SolarSystem представляет солнечную систему EVE Online с координатами в метрах
type SolarSystem struct {
	SystemID   int64     `json:"system_id" db:"system_id"`
	Name       string    `json:"name" db:"name"`
	X          float64   `json:"x" db:"x"`
	Y          float64   `json:"y" db:"y"`
	Z          float64   `json:"z" db:"z"`
	Added      time.Time `json:"added" db:"added"`
	LastUpdate time.Time `json:"last_update" db:"last_update"`
}

// ValidSystemID проверяет, что ID находится в допустимом диапазоне
func ValidSystemID(id int64) bool {
	return id >= MinSystemID && id <= MaxSystemID
}
