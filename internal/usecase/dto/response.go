package dto

// SystemInfo - краткие сведения о системе в ответе
type SystemInfo struct {
	SystemID int64  `json:"system_id"`
	Name     string `json:"name"`
}

// DistanceResponse - ответ на расчет расстояния
type DistanceResponse struct {
	System1            SystemInfo `json:"system_1"`
	System2            SystemInfo `json:"system_2"`
	DistanceMeters     float64    `json:"distance_meters"`
	DistanceLightYears float64    `json:"distance_lightyears"`
}

// HealthResponse - ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// APIInfoResponse - описание API для корневого маршрута
type APIInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Usage     APIUsage          `json:"usage"`
}

// APIUsage - подсказка по параметрам запроса
type APIUsage struct {
	Parameters  []string `json:"parameters"`
	ValidRange  string   `json:"valid_range"`
	ExampleGET  string   `json:"example_get"`
	ExamplePOST string   `json:"example_post"`
}
