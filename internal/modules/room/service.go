package room

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	rooms    RoomRepository
	bookings BookingCounter
}

func NewService(rooms RoomRepository, bookings BookingCounter) *Service {
	return &Service{rooms: rooms, bookings: bookings}
}

func (s *Service) CreateRoom(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	room := &domain.Room{
		Name:          req.Name,
		Level:         req.Level,
		Price:         domain.Price{Amount: req.PriceAmount, Currency: req.PriceCurrency},
		InMaintenance: req.InMaintenance,
	}
	if err := room.Validate(); err != nil {
		return nil, err
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		if isDuplicateRowViolation(err) {
			return nil, domain.ErrRoomNotAvailable
		}
		return nil, domain.StorageError(err)
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if room == nil {
		return nil, domain.ErrRoomNotFound
	}

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.Level > 0 {
		room.Level = req.Level
	}
	if req.PriceAmount > 0 {
		room.Price.Amount = req.PriceAmount
	}
	if req.PriceCurrency != "" {
		room.Price.Currency = req.PriceCurrency
	}
	room.InMaintenance = req.InMaintenance

	if err := room.Validate(); err != nil {
		return nil, err
	}
	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, domain.StorageError(err)
	}
	return room, nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if room == nil {
		return nil, domain.ErrRoomNotFound
	}
	return room, nil
}

func (s *Service) GetAllRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.rooms.GetAll(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return rooms, nil
}

func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		return domain.StorageError(err)
	}
	if room == nil {
		return domain.ErrRoomNotFound
	}

	cnt, err := s.bookings.CountForRoom(ctx, id)
	if err != nil {
		return domain.StorageError(err)
	}
	if cnt > 0 {
		return domain.ErrCannotDeleteRoomWithBookings
	}

	if _, err := s.rooms.Delete(ctx, id); err != nil {
		return domain.StorageError(err)
	}
	return nil
}

func isDuplicateRowViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
