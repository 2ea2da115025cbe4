package domain

// Price is a decimal amount plus an ISO currency code.
type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Room struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Price         Price  `json:"price"`
	InMaintenance bool   `json:"in_maintenance"`
}

// Validate runs the persisted-state checks in order; the first violated rule
// decides the returned error.
func (r *Room) Validate() error {
	if r.Name == "" {
		return ErrMissingRoomName
	}
	if r.Level <= 0 {
		return ErrMissingRoomLevel
	}
	if r.Price.Amount <= 0 {
		return ErrInvalidPrice
	}
	return nil
}
