package repository

import (
	"context"
	"time"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/pkg/pagination"
	"github.com/google/uuid"
)

// InvoiceFilterParams filters invoice listings. Listings always come back
// creation time DESC (newest first).
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string // matches invoice number or customer name
	StartDate  *time.Time
	EndDate    *time.Time
}

// InvoiceRepository defines invoice data access. Invoices are insert-only;
// there is deliberately no Update. Delete exists only to back out an
// invoice whose line snapshots failed to persist.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListAllWithItems returns every invoice with items preloaded,
	// oldest first. The dashboard aggregates over this.
	ListAllWithItems(ctx context.Context) ([]entity.Invoice, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceItemRepository defines invoice line snapshot data access
type InvoiceItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.InvoiceItem) error
}
