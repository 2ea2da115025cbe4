package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// BookingRepository is the booking store contract the admission engine needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) (bool, error)
	RoomExists(ctx context.Context, roomID int64) (bool, error)
	GuestExists(ctx context.Context, guestID int64) (bool, error)
	FindOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (*domain.Booking, error)
}

// RoomRepository is the slice of the room store the engine reads.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
