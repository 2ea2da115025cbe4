package booking

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// CreateBooking runs the admission checks in a fixed order; the first failed
// check decides the error and nothing is written. Requested dates are reduced
// to day granularity before any check.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	start := domain.DateOnly(req.Start)
	end := domain.DateOnly(req.End)

	if !end.After(start) {
		return nil, domain.ErrInvalidDateRange
	}

	roomOK, err := s.bookings.RoomExists(ctx, req.RoomID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if !roomOK {
		return nil, domain.ErrRoomNotFound
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if room != nil && room.InMaintenance {
		return nil, domain.ErrRoomInMaintenance
	}

	conflict, err := s.bookings.FindOverlapping(ctx, req.RoomID, start, end, 0)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if conflict != nil {
		return nil, domain.ErrRoomNotAvailable
	}

	guestOK, err := s.bookings.GuestExists(ctx, req.GuestID)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if !guestOK {
		return nil, domain.ErrGuestNotFound
	}

	now := time.Now().UTC()
	if start.Before(domain.DateOnly(now)) {
		return nil, domain.ErrInvalidDateRange
	}

	b := &domain.Booking{
		RoomID:   req.RoomID,
		GuestID:  req.GuestID,
		PlacedAt: now,
		Start:    start,
		End:      end,
		Status:   domain.BookingCreated,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapConstraintViolation(err) {
			return nil, domain.ErrRoomNotAvailable
		}
		return nil, domain.StorageError(err)
	}
	return b, nil
}

// UpdateBooking reschedules an existing booking. Only the dates are mutable;
// the booking's own interval is excluded from the conflict set.
func (s *Service) UpdateBooking(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}

	start := domain.DateOnly(req.Start)
	end := domain.DateOnly(req.End)
	if !end.After(start) {
		return nil, domain.ErrInvalidDateRange
	}

	conflict, err := s.bookings.FindOverlapping(ctx, b.RoomID, start, end, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if conflict != nil {
		return nil, domain.ErrRoomNotAvailable
	}

	b.Start = start
	b.End = end
	if err := s.bookings.Update(ctx, b); err != nil {
		if isOverlapConstraintViolation(err) {
			return nil, domain.ErrRoomNotAvailable
		}
		return nil, domain.StorageError(err)
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if b == nil {
		return nil, domain.ErrBookingNotFound
	}
	return b, nil
}

func (s *Service) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	bs, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return bs, nil
}

func (s *Service) DeleteBooking(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.bookings.Delete(ctx, id)
	if err != nil {
		return false, domain.StorageError(err)
	}
	return deleted, nil
}

// The bookings_no_overlap exclusion constraint backstops the read-then-write
// race between concurrent admissions of the same room on PostgreSQL.
func isOverlapConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23P01" && pgErr.ConstraintName == "bookings_no_overlap"
}
