package repository

import (
	"context"
	"errors"

	"github.com/chingz/pos-api/internal/domain/entity"
	domainRepo "github.com/chingz/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *gorm.DB) domainRepo.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restaurant, err
}

func (r *restaurantRepository) GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.db.WithContext(ctx).First(&restaurant, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &restaurant, err
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// NextInvoiceSeq atomically increments and returns the invoice counter.
// Uses: UPDATE restaurants SET invoice_seq = invoice_seq + 1 ... RETURNING
// so concurrent checkouts can never observe the same value.
func (r *restaurantRepository) NextInvoiceSeq(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	var seq int64
	err := r.db.WithContext(ctx).Raw(
		"UPDATE restaurants SET invoice_seq = invoice_seq + 1 WHERE id = ? RETURNING invoice_seq",
		restaurantID,
	).Scan(&seq).Error
	if err != nil {
		return 0, err
	}
	if seq == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return seq, nil
}
