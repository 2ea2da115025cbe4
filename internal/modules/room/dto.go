package room

type CreateRoomRequest struct {
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	PriceAmount   float64 `json:"price_amount"`
	PriceCurrency string  `json:"price_currency"`
	InMaintenance bool    `json:"in_maintenance"`
}

// UpdateRoomRequest carries a partial update: zero-valued name, level and
// price leave the stored values untouched, the maintenance flag always wins.
type UpdateRoomRequest struct {
	Name          string  `json:"name"`
	Level         int     `json:"level"`
	PriceAmount   float64 `json:"price_amount"`
	PriceCurrency string  `json:"price_currency"`
	InMaintenance bool    `json:"in_maintenance"`
}
