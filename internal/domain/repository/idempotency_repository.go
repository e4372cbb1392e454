package repository

import (
	"context"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// IdempotencyRepository defines idempotency key data access
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
