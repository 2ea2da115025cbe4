package guest

import (
	"context"

	"hotelbooking/internal/domain"
)

type Service struct {
	guests   GuestRepository
	bookings BookingChecker
}

func NewService(guests GuestRepository, bookings BookingChecker) *Service {
	return &Service{guests: guests, bookings: bookings}
}

func (s *Service) CreateGuest(ctx context.Context, req CreateGuestRequest) (*domain.Guest, error) {
	g := &domain.Guest{
		Name:           req.Name,
		Surname:        req.Surname,
		Email:          req.Email,
		DocumentNumber: req.DocumentNumber,
		DocumentType:   domain.DocumentType(req.DocumentType),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := s.guests.Create(ctx, g); err != nil {
		return nil, domain.StorageError(err)
	}
	return g, nil
}

func (s *Service) GetGuest(ctx context.Context, id int64) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	if g == nil {
		return nil, domain.ErrGuestNotFound
	}
	return g, nil
}

func (s *Service) GetAllGuests(ctx context.Context) ([]domain.Guest, error) {
	gs, err := s.guests.GetAll(ctx)
	if err != nil {
		return nil, domain.StorageError(err)
	}
	return gs, nil
}

func (s *Service) DeleteGuest(ctx context.Context, id int64) error {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		return domain.StorageError(err)
	}
	if g == nil {
		return domain.ErrGuestNotFound
	}

	hasBookings, err := s.bookings.HasBookingsForGuest(ctx, id)
	if err != nil {
		return domain.StorageError(err)
	}
	if hasBookings {
		return domain.ErrCannotDeleteGuestWithBookings
	}

	if _, err := s.guests.Delete(ctx, id); err != nil {
		return domain.StorageError(err)
	}
	return nil
}
