package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/chingz/pos-api/internal/domain/enum"
	"github.com/chingz/pos-api/internal/domain/repository"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMenuFixture(t *testing.T) (*MenuService, context.Context, *fakeMenuItemRepo) {
	t.Helper()

	repo := &fakeMenuItemRepo{}
	svc := NewMenuService(repo)
	ctx := infraRepo.WithRestaurant(context.Background(), uuid.New())
	return svc, ctx, repo
}

func TestCreateMenuItemStoresPriceInCents(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{
		Name:     "Veg Manchurian",
		Price:    120.50,
		Category: "Main Course",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(12050), item.Price)
	assert.Equal(t, enum.CategoryMainCourse, item.Category)
	assert.Nil(t, item.Recipe)
}

func TestCreateMenuItemNormalizesUnknownCategory(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{
		Name:     "Mystery Dish",
		Price:    100,
		Category: "specials",
	})
	require.NoError(t, err)

	assert.Equal(t, enum.CategoryUncategorized, item.Category)
}

func TestCreateMenuItemRejectsBlankName(t *testing.T) {
	svc, ctx, repo := newMenuFixture(t)

	_, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "   ", Price: 100})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.items)
}

func TestCreateMenuItemRejectsNegativePrice(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	_, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Soup", Price: -1})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
}

func TestCreateMenuItemRequiresRestaurantContext(t *testing.T) {
	svc, _, _ := newMenuFixture(t)

	_, err := svc.CreateMenuItem(context.Background(), &CreateMenuItemInput{Name: "Soup", Price: 50})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUpdateMenuItemPatchesOnlyProvidedFields(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{
		Name:     "Chilli Paneer",
		Price:    150,
		Category: "Starters",
	})
	require.NoError(t, err)

	newPrice := 180.0
	updated, err := svc.UpdateMenuItem(ctx, item.ID, &UpdateMenuItemInput{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, "Chilli Paneer", updated.Name)
	assert.Equal(t, int64(18000), updated.Price)
	assert.Equal(t, enum.CategoryStarters, updated.Category)
}

func TestUpdateMenuItemNotFound(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	name := "Ghost Dish"
	_, err := svc.UpdateMenuItem(ctx, uuid.New(), &UpdateMenuItemInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateRecipeSetsAndClears(t *testing.T) {
	svc, ctx, repo := newMenuFixture(t)

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Hakka Noodles", Price: 130})
	require.NoError(t, err)

	recipe := "Boil noodles, toss with vegetables and soy sauce."
	updated, err := svc.UpdateRecipe(ctx, item.ID, &recipe)
	require.NoError(t, err)
	require.NotNil(t, updated.Recipe)
	assert.Equal(t, recipe, *updated.Recipe)

	// A blank recipe clears it
	blank := "   "
	updated, err = svc.UpdateRecipe(ctx, item.ID, &blank)
	require.NoError(t, err)
	assert.Nil(t, updated.Recipe)

	stored, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Recipe)
}

func TestSearchRecipesReturnsOnlyItemsWithRecipes(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	recipe := "Deep fry, toss in schezwan sauce."
	_, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Schezwan Rice", Price: 140, Recipe: &recipe})
	require.NoError(t, err)
	_, err = svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Plain Rice", Price: 80})
	require.NoError(t, err)

	items, err := svc.SearchRecipes(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Schezwan Rice", items[0].Name)
}

func TestListMenuItemsRejectsUnknownCategory(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	bogus := enum.MenuCategory("dessertz")
	_, err := svc.ListMenuItems(ctx, &repository.MenuItemFilterParams{Category: &bogus})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestDeleteMenuItemNotFound(t *testing.T) {
	svc, ctx, _ := newMenuFixture(t)

	err := svc.DeleteMenuItem(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestDeleteMenuItemRemovesIt(t *testing.T) {
	svc, ctx, repo := newMenuFixture(t)

	item, err := svc.CreateMenuItem(ctx, &CreateMenuItemInput{Name: "Momos", Price: 90})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMenuItem(ctx, item.ID))
	assert.Empty(t, repo.items)
}
