package guest

import (
	"context"

	"hotelbooking/internal/domain"
)

type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id int64) (*domain.Guest, error)
	GetAll(ctx context.Context) ([]domain.Guest, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// BookingChecker reports whether a guest still has bookings on record.
type BookingChecker interface {
	HasBookingsForGuest(ctx context.Context, guestID int64) (bool, error)
}
