package dto

// DistanceRequest - запрос на расчет расстояния между двумя системами.
// Границы диапазона ID совпадают с domain.MinSystemID и domain.MaxSystemID.
type DistanceRequest struct {
	SystemID1 int64 `json:"system_id_1" validate:"required,min=30000000,max=31000000"`
	SystemID2 int64 `json:"system_id_2" validate:"required,min=30000000,max=31000000"`
}
