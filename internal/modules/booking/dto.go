package booking

import "time"

type CreateBookingRequest struct {
	RoomID  int64     `json:"room_id"`
	GuestID int64     `json:"guest_id"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

type UpdateBookingRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
