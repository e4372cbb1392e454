package service

import (
	"context"
	"errors"
	"time"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/internal/domain/repository"
	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. They keep insertion order
// so listing semantics match the real store.

type fakeMenuItemRepo struct {
	items []entity.MenuItem
}

func (f *fakeMenuItemRepo) Create(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeMenuItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuItemRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, id := range ids {
		for i := range f.items {
			if f.items[i].ID == id {
				out = append(out, f.items[i])
				break
			}
		}
	}
	return out, nil
}

func (f *fakeMenuItemRepo) List(ctx context.Context, params *repository.MenuItemFilterParams) ([]entity.MenuItem, error) {
	out := make([]entity.MenuItem, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeMenuItemRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeMenuItemRepo) Update(ctx context.Context, item *entity.MenuItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeMenuItemRepo) UpdateRecipe(ctx context.Context, id uuid.UUID, recipe *string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Recipe = recipe
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeMenuItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeInvoiceRepo struct {
	invoices  []entity.Invoice
	createErr error
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}
	f.invoices = append(f.invoices, *invoice)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			inv := f.invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) List(ctx context.Context, params *repository.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	out := make([]entity.Invoice, len(f.invoices))
	copy(out, f.invoices)
	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, int64(len(out)), nil
}

func (f *fakeInvoiceRepo) ListAllWithItems(ctx context.Context) ([]entity.Invoice, error) {
	out := make([]entity.Invoice, len(f.invoices))
	copy(out, f.invoices)
	return out, nil
}

func (f *fakeInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.invoices {
		if f.invoices[i].ID == id {
			f.invoices = append(f.invoices[:i], f.invoices[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

type fakeInvoiceItemRepo struct {
	items    []entity.InvoiceItem
	batchErr error
}

func (f *fakeInvoiceItemRepo) CreateBatch(ctx context.Context, items []entity.InvoiceItem) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.items = append(f.items, items...)
	return nil
}

type fakeRestaurantRepo struct {
	restaurant *entity.Restaurant
	seq        int64
}

func (f *fakeRestaurantRepo) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	f.restaurant = restaurant
	return nil
}

func (f *fakeRestaurantRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	if f.restaurant != nil && f.restaurant.ID == id {
		r := *f.restaurant
		return &r, nil
	}
	return nil, nil
}

func (f *fakeRestaurantRepo) GetBySlug(ctx context.Context, slug string) (*entity.Restaurant, error) {
	if f.restaurant != nil && f.restaurant.Slug == slug {
		r := *f.restaurant
		return &r, nil
	}
	return nil, nil
}

func (f *fakeRestaurantRepo) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	f.restaurant = restaurant
	return nil
}

func (f *fakeRestaurantRepo) NextInvoiceSeq(ctx context.Context, restaurantID uuid.UUID) (int64, error) {
	f.seq++
	return f.seq, nil
}

func testRestaurant() *entity.Restaurant {
	return &entity.Restaurant{
		ID:                 uuid.New(),
		Name:               "CHINGZ CHINESE",
		Slug:               "chingz-chinese",
		Tagline:            "FAST FOOD",
		Address:            "BAWARIYA KALAN BHOPAL",
		CurrencySymbol:     "Rs",
		TokenPrefix:        "Token#",
		PaymentModeLabel:   "CASH",
		DefaultCountryCode: "91",
	}
}
