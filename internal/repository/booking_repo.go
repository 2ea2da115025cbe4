package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID       int64     `gorm:"column:id;primaryKey"`
	RoomID   int64     `gorm:"column:room_id;index"`
	GuestID  int64     `gorm:"column:guest_id;index"`
	PlacedAt time.Time `gorm:"column:placed_at"`
	Start    time.Time `gorm:"column:start_date"`
	End      time.Time `gorm:"column:end_date"`
	Status   string    `gorm:"column:status"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:       m.ID,
		RoomID:   m.RoomID,
		GuestID:  m.GuestID,
		PlacedAt: m.PlacedAt,
		Start:    m.Start,
		End:      m.End,
		Status:   domain.BookingStatus(m.Status),
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:       b.ID,
		RoomID:   b.RoomID,
		GuestID:  b.GuestID,
		PlacedAt: b.PlacedAt,
		Start:    b.Start,
		End:      b.End,
		Status:   string(b.Status),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", roomID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) GuestExists(ctx context.Context, guestID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&guestModel{}).Where("id = ?", guestID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// FindOverlapping returns a booking for the room whose [start_date, end_date)
// interval intersects [start, end), or nil when the room is free. Pass
// excludeID to ignore the booking being rescheduled.
//
// TODO: decide whether canceled and refunded bookings should stop blocking
// their date range; today every status counts.
func (r *BookingRepository) FindOverlapping(ctx context.Context, roomID int64, start, end time.Time, excludeID int64) (*domain.Booking, error) {
	var m bookingModel
	q := r.db.WithContext(ctx).
		Where("room_id = ? AND start_date < ? AND end_date > ?", roomID, end, start)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	tx := q.First(&m)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) HasBookingsForGuest(ctx context.Context, guestID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("guest_id = ?", guestID).Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) CountForRoom(ctx context.Context, roomID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("room_id = ?", roomID).Count(&cnt)
	return cnt, tx.Error
}

// Models lists the persistence models for schema migration.
func Models() []any {
	return []any{&roomModel{}, &guestModel{}, &bookingModel{}}
}
