package room

import (
	"context"

	"hotelbooking/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetAll(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// BookingCounter reports how many bookings reference a room. Deletion is
// blocked while any exist.
type BookingCounter interface {
	CountForRoom(ctx context.Context, roomID int64) (int64, error)
}
