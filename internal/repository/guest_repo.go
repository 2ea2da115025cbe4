package repository

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	Name           string `gorm:"column:name"`
	Surname        string `gorm:"column:surname"`
	Email          string `gorm:"column:email"`
	DocumentNumber string `gorm:"column:document_number"`
	DocumentType   int    `gorm:"column:document_type"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	return &domain.Guest{
		ID:             m.ID,
		Name:           m.Name,
		Surname:        m.Surname,
		Email:          m.Email,
		DocumentNumber: m.DocumentNumber,
		DocumentType:   domain.DocumentType(m.DocumentType),
	}
}

func toGuestModel(g *domain.Guest) guestModel {
	return guestModel{
		ID:             g.ID,
		Name:           g.Name,
		Surname:        g.Surname,
		Email:          g.Email,
		DocumentNumber: g.DocumentNumber,
		DocumentType:   int(g.DocumentType),
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := toGuestModel(g)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	g.ID = m.ID
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) GetAll(ctx context.Context) ([]domain.Guest, error) {
	var ms []guestModel
	tx := r.db.WithContext(ctx).Order("id").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}

func (r *GuestRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&guestModel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
