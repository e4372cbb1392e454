package repository

import (
	"context"
	"errors"

	"github.com/chingz/pos-api/internal/domain/entity"
	domainRepo "github.com/chingz/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByIDs retrieves multiple menu items by their IDs in a single query
func (r *menuItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	if len(ids) == 0 {
		return []entity.MenuItem{}, nil
	}
	var items []entity.MenuItem
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Where("id IN ?", ids).
		Find(&items).Error
	return items, err
}

func (r *menuItemRepository) List(ctx context.Context, params *domainRepo.MenuItemFilterParams) ([]entity.MenuItem, error) {
	var items []entity.MenuItem

	query := r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Scopes(RestaurantScope(ctx))

	if params != nil {
		if params.Category != nil {
			query = query.Where("category = ?", *params.Category)
		}
		if params.Search != "" {
			query = query.Where("name ILIKE ? OR category ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%")
		}
	}

	err := query.Order("category ASC, name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Scopes(RestaurantScope(ctx)).
		Count(&total).Error
	return total, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// UpdateRecipe sets only the recipe column. A nil recipe clears it.
func (r *menuItemRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *string) error {
	return r.db.WithContext(ctx).Model(&entity.MenuItem{}).
		Scopes(RestaurantScope(ctx)).
		Where("id = ?", id).
		Update("recipe", recipe).Error
}

func (r *menuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Delete(&entity.MenuItem{}, "id = ?", id).Error
}
