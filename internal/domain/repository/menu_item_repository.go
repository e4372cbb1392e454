package repository

import (
	"context"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/internal/domain/enum"
	"github.com/google/uuid"
)

// MenuItemFilterParams filters menu item listings. Listings always come
// back sorted category ASC, name ASC.
type MenuItemFilterParams struct {
	Category *enum.MenuCategory
	Search   string // matches name or category, case-insensitive
}

// MenuItemRepository defines menu item data access
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	List(ctx context.Context, params *MenuItemFilterParams) ([]entity.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
