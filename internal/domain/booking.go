package domain

import "time"

type BookingStatus string

const (
	BookingCreated  BookingStatus = "created"
	BookingPaid     BookingStatus = "paid"
	BookingCanceled BookingStatus = "canceled"
	BookingFinished BookingStatus = "finished"
	BookingRefunded BookingStatus = "refunded"
)

// BookingAction is a lifecycle action applied to a booking status.
type BookingAction string

const (
	ActionPay    BookingAction = "pay"
	ActionCancel BookingAction = "cancel"
	ActionFinish BookingAction = "finish"
	ActionRefund BookingAction = "refund"
	ActionReopen BookingAction = "reopen"
)

// ChangeState applies a lifecycle action to a status. Unmapped pairs are a
// no-op and return the status unchanged rather than failing.
func ChangeState(status BookingStatus, action BookingAction) BookingStatus {
	switch {
	case status == BookingCreated && action == ActionPay:
		return BookingPaid
	case status == BookingCreated && action == ActionCancel:
		return BookingCanceled
	case status == BookingPaid && action == ActionFinish:
		return BookingFinished
	case status == BookingPaid && action == ActionRefund:
		return BookingRefunded
	case status == BookingCanceled && action == ActionReopen:
		return BookingCreated
	default:
		return status
	}
}

// Booking holds reserved dates at day granularity. Start and End are
// truncated to midnight UTC and form a half-open [start, end) interval.
type Booking struct {
	ID       int64         `json:"id"`
	RoomID   int64         `json:"room_id"`
	GuestID  int64         `json:"guest_id"`
	PlacedAt time.Time     `json:"placed_at"`
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Status   BookingStatus `json:"status"`
}

// DateOnly discards the time-of-day component.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
