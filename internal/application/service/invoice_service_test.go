package service

import (
	"context"
	"testing"

	"github.com/chingz/pos-api/internal/domain/entity"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoiceFixture(t *testing.T) (*InvoiceService, context.Context, *fakeInvoiceRepo, *fakeMenuItemRepo, *entity.Restaurant) {
	t.Helper()

	restaurant := testRestaurant()
	invoiceRepo := &fakeInvoiceRepo{}
	menuRepo := &fakeMenuItemRepo{}
	svc := NewInvoiceService(invoiceRepo, &fakeInvoiceItemRepo{}, menuRepo, &fakeRestaurantRepo{restaurant: restaurant})

	ctx := infraRepo.WithRestaurant(context.Background(), restaurant.ID)
	return svc, ctx, invoiceRepo, menuRepo, restaurant
}

func addMenuItem(t *testing.T, repo *fakeMenuItemRepo, restaurantID uuid.UUID, name string, priceCents int64) uuid.UUID {
	t.Helper()
	item := &entity.MenuItem{RestaurantID: restaurantID, Name: name, Price: priceCents}
	require.NoError(t, repo.Create(context.Background(), item))
	return item.ID
}

func TestCreateInvoiceComputesTotals(t *testing.T) {
	svc, ctx, _, menuRepo, restaurant := newInvoiceFixture(t)

	noodles := addMenuItem(t, menuRepo, restaurant.ID, "Veg Noodles", 15000)

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: noodles, Quantity: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), invoice.SubTotal)
	assert.Equal(t, int64(0), invoice.Discount)
	assert.Equal(t, int64(5400), invoice.Tax)
	assert.Equal(t, int64(35400), invoice.Total)
	assert.Equal(t, "INV-1", invoice.InvoiceNo)
	assert.Equal(t, restaurant.PaymentModeLabel, invoice.PaymentMode)
}

func TestCreateInvoiceAppliesPercentageDiscount(t *testing.T) {
	svc, ctx, _, menuRepo, restaurant := newInvoiceFixture(t)

	a := addMenuItem(t, menuRepo, restaurant.ID, "Spring Roll", 10000)
	b := addMenuItem(t, menuRepo, restaurant.ID, "Fried Rice", 20000)

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		DiscountPercent: 10,
		Items: []InvoiceItemInput{
			{MenuItemID: a, Quantity: 1},
			{MenuItemID: b, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(30000), invoice.SubTotal)
	assert.Equal(t, int64(3000), invoice.Discount)
	assert.Equal(t, int64(4860), invoice.Tax)
	assert.Equal(t, int64(31860), invoice.Total)
}

func TestCreateInvoiceRejectsEmptyBill(t *testing.T) {
	svc, ctx, invoiceRepo, _, _ := newInvoiceFixture(t)

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{})
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))
	assert.Equal(t, 422, apperror.GetAppError(err).Code)

	// Nothing was persisted
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceRejectsUnknownMenuItem(t *testing.T) {
	svc, ctx, invoiceRepo, _, _ := newInvoiceFixture(t)

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceNormalizesCustomerPhone(t *testing.T) {
	svc, ctx, _, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		CustomerName:  "Ravi",
		CustomerPhone: "98765 43210",
		Items:         []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "919876543210", invoice.CustomerPhone)
}

func TestCreateInvoiceRejectsDigitFreePhone(t *testing.T) {
	svc, ctx, invoiceRepo, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		CustomerPhone: "not-a-phone",
		Items:         []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceNumbersSequentially(t *testing.T) {
	svc, ctx, _, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	for i, want := range []string{"INV-1", "INV-2", "INV-3"} {
		invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
			Items: []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
		})
		require.NoError(t, err, "invoice %d", i)
		assert.Equal(t, want, invoice.InvoiceNo)
		assert.Equal(t, int64(i+1), invoice.TokenNo)
	}
}

func TestCreateInvoiceUsesMenuPricesNotClientPrices(t *testing.T) {
	svc, ctx, _, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: item, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(24000), invoice.SubTotal)
}

func TestCreateInvoiceRequiresRestaurantContext(t *testing.T) {
	svc, _, _, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	_, err := svc.CreateInvoice(context.Background(), &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCreateInvoiceSurfacesStoreError(t *testing.T) {
	svc, ctx, invoiceRepo, menuRepo, restaurant := newInvoiceFixture(t)
	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	invoiceRepo.createErr = assert.AnError
	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
	})
	require.Error(t, err)
	assert.Empty(t, invoiceRepo.invoices)
}

func TestCreateInvoiceBacksOutWhenItemInsertFails(t *testing.T) {
	restaurant := testRestaurant()
	invoiceRepo := &fakeInvoiceRepo{}
	itemRepo := &fakeInvoiceItemRepo{batchErr: assert.AnError}
	menuRepo := &fakeMenuItemRepo{}
	svc := NewInvoiceService(invoiceRepo, itemRepo, menuRepo, &fakeRestaurantRepo{restaurant: restaurant})
	ctx := infraRepo.WithRestaurant(context.Background(), restaurant.ID)

	item := addMenuItem(t, menuRepo, restaurant.ID, "Momos", 8000)

	_, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		Items: []InvoiceItemInput{{MenuItemID: item, Quantity: 1}},
	})
	require.Error(t, err)

	// The half-written invoice must not survive in history with totals
	// but no line snapshots
	assert.Empty(t, invoiceRepo.invoices)
	assert.Empty(t, itemRepo.items)
}
