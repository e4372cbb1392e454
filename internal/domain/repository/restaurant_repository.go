package repository

import (
	"context"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// RestaurantRepository defines restaurant (tenant) data access
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	// NextInvoiceSeq atomically advances and returns the restaurant's
	// invoice counter. Two concurrent checkouts can never observe the
	// same value.
	NextInvoiceSeq(ctx context.Context, restaurantID uuid.UUID) (int64, error)
}
