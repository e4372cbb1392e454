package repository

import (
	"context"
	"errors"

	"github.com/chingz/pos-api/internal/domain/entity"
	domainRepo "github.com/chingz/pos-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(RestaurantScope(ctx))

	if params.Search != "" {
		query = query.Where("invoice_no ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListAllWithItems(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at ASC").
		Find(&invoices).Error
	return invoices, err
}

// Delete removes an invoice row for good. Only the checkout compensation
// path uses this, so the burned invoice number never resurfaces as an
// empty bill.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Scopes(RestaurantScope(ctx)).
		Unscoped().
		Delete(&entity.Invoice{}, "id = ?", id).Error
}

type invoiceItemRepository struct {
	db *gorm.DB
}

// NewInvoiceItemRepository creates a new invoice item repository
func NewInvoiceItemRepository(db *gorm.DB) domainRepo.InvoiceItemRepository {
	return &invoiceItemRepository{db: db}
}

func (r *invoiceItemRepository) CreateBatch(ctx context.Context, items []entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

