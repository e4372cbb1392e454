package service

import (
	"context"
	"strings"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/internal/domain/enum"
	"github.com/chingz/pos-api/internal/domain/repository"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/pkg/apperror"
	"github.com/google/uuid"
)

// MenuService handles menu item operations, including the recipe notebook
// attached to each item.
type MenuService struct {
	menuItemRepo repository.MenuItemRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuItemRepo repository.MenuItemRepository) *MenuService {
	return &MenuService{menuItemRepo: menuItemRepo}
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	Name     string
	Price    float64
	Category string
	Recipe   *string
}

// CreateMenuItem creates a new menu item
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	restaurantID, ok := infraRepo.GetRestaurantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Restaurant context required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Name is required"},
		})
	}
	if input.Price < 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "price", Message: "Price cannot be negative"},
		})
	}

	item := &entity.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        int64(input.Price*100 + 0.5),
		Category:     enum.MenuCategory(input.Category).Normalize(),
		Recipe:       input.Recipe,
	}

	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems lists menu items, optionally filtered by category or search
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, error) {
	if params != nil && params.Category != nil && !params.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown category")
	}
	return s.menuItemRepo.List(ctx, params)
}

// UpdateMenuItemInput represents the update menu item input. Nil fields are
// left unchanged.
type UpdateMenuItemInput struct {
	Name     *string
	Price    *float64
	Category *string
}

// UpdateMenuItem updates a menu item. Invoices are unaffected: their item
// snapshots were frozen at checkout.
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "name", Message: "Name is required"},
			})
		}
		item.Name = name
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "price", Message: "Price cannot be negative"},
			})
		}
		item.Price = int64(*input.Price*100 + 0.5)
	}
	if input.Category != nil {
		item.Category = enum.MenuCategory(*input.Category).Normalize()
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateRecipe sets or clears the recipe attached to a menu item
func (s *MenuService) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *string) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if recipe != nil && strings.TrimSpace(*recipe) == "" {
		recipe = nil
	}

	if err := s.menuItemRepo.UpdateRecipe(ctx, id, recipe); err != nil {
		return nil, err
	}
	item.Recipe = recipe
	return item, nil
}

// SearchRecipes returns menu items whose name matches the query and that
// have a recipe attached. An empty query returns every item with a recipe.
func (s *MenuService) SearchRecipes(ctx context.Context, query string) ([]entity.MenuItem, error) {
	items, err := s.menuItemRepo.List(ctx, &repository.MenuItemFilterParams{Search: strings.TrimSpace(query)})
	if err != nil {
		return nil, err
	}

	withRecipes := make([]entity.MenuItem, 0, len(items))
	for _, item := range items {
		if item.Recipe != nil && *item.Recipe != "" {
			withRecipes = append(withRecipes, item)
		}
	}
	return withRecipes, nil
}

// DeleteMenuItem soft deletes a menu item. Existing invoices keep their
// snapshots of it.
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuItemRepo.Delete(ctx, id)
}
