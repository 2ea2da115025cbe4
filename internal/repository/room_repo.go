package repository

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64   `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name"`
	Level         int     `gorm:"column:level"`
	PriceAmount   float64 `gorm:"column:price_amount"`
	PriceCurrency string  `gorm:"column:price_currency"`
	InMaintenance bool    `gorm:"column:in_maintenance"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	return &domain.Room{
		ID:            m.ID,
		Name:          m.Name,
		Level:         m.Level,
		Price:         domain.Price{Amount: m.PriceAmount, Currency: m.PriceCurrency},
		InMaintenance: m.InMaintenance,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	return roomModel{
		ID:            r.ID,
		Name:          r.Name,
		Level:         r.Level,
		PriceAmount:   r.Price.Amount,
		PriceCurrency: r.Price.Currency,
		InMaintenance: r.InMaintenance,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	room.ID = m.ID
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]domain.Room, error) {
	var ms []roomModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&roomModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
