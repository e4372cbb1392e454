package repository

import (
	"context"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines staff account data access
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
