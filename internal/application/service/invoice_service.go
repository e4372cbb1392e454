package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/chingz/pos-api/internal/domain/billing"
	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/internal/domain/repository"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/pkg/apperror"
	"github.com/chingz/pos-api/pkg/pagination"
	"github.com/chingz/pos-api/pkg/whatsapp"
	"github.com/google/uuid"
)

// InvoiceService finalizes bills into invoices
type InvoiceService struct {
	invoiceRepo     repository.InvoiceRepository
	invoiceItemRepo repository.InvoiceItemRepository
	menuItemRepo    repository.MenuItemRepository
	restaurantRepo  repository.RestaurantRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	invoiceItemRepo repository.InvoiceItemRepository,
	menuItemRepo repository.MenuItemRepository,
	restaurantRepo repository.RestaurantRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		invoiceItemRepo: invoiceItemRepo,
		menuItemRepo:    menuItemRepo,
		restaurantRepo:  restaurantRepo,
	}
}

// InvoiceItemInput represents one bill line in checkout order
type InvoiceItemInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// CreateInvoiceInput represents the checkout input
type CreateInvoiceInput struct {
	UserID          uuid.UUID
	CustomerName    string
	CustomerPhone   string
	DiscountPercent float64
	Items           []InvoiceItemInput
}

// CreateInvoice finalizes a bill: prices are taken from the menu (never
// from the client), totals are computed, a sequential invoice number is
// drawn, and the invoice plus its line snapshots are persisted. Line order
// follows the input order.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	restaurantID, ok := infraRepo.GetRestaurantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Restaurant context required")
	}

	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "At least one item is required"},
		})
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	customerPhone := ""
	if strings.TrimSpace(input.CustomerPhone) != "" {
		customerPhone = whatsapp.NormalizePhone(input.CustomerPhone, restaurant.DefaultCountryCode)
		if customerPhone == "" {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "customer_phone", Message: "Phone number is not valid"},
			})
		}
	}

	// Batch fetch all menu items in one query (prevents N+1)
	menuItemIDs := make([]uuid.UUID, len(input.Items))
	for i, item := range input.Items {
		menuItemIDs[i] = item.MenuItemID
	}

	menuItems, err := s.menuItemRepo.GetByIDs(ctx, menuItemIDs)
	if err != nil {
		return nil, err
	}

	menuItemMap := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		menuItemMap[menuItems[i].ID] = &menuItems[i]
	}

	// Snapshot lines in input order with canonical menu prices
	lines := make([]billing.Line, 0, len(input.Items))
	invoiceItems := make([]entity.InvoiceItem, 0, len(input.Items))
	for pos, item := range input.Items {
		menuItem, exists := menuItemMap[item.MenuItemID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", item.MenuItemID))
		}
		if item.Quantity <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{
				{Field: "items", Message: "Quantity must be at least 1"},
			})
		}

		lines = append(lines, billing.Line{
			Name:      menuItem.Name,
			UnitPrice: menuItem.Price,
			Quantity:  item.Quantity,
		})
		invoiceItems = append(invoiceItems, entity.InvoiceItem{
			MenuItemID: menuItem.ID,
			Position:   pos,
			Name:       menuItem.Name,
			UnitPrice:  menuItem.Price,
			Quantity:   item.Quantity,
			Total:      menuItem.Price * int64(item.Quantity),
		})
	}

	totals, err := billing.Compute(lines, input.DiscountPercent)
	if err != nil {
		return nil, err
	}

	seq, err := s.restaurantRepo.NextInvoiceSeq(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		RestaurantID:  restaurantID,
		UserID:        input.UserID,
		InvoiceNo:     fmt.Sprintf("INV-%d", seq),
		TokenNo:       seq,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: customerPhone,
		SubTotal:      totals.SubTotal,
		Discount:      totals.Discount,
		Tax:           totals.Tax,
		Total:         totals.Total,
		PaymentMode:   restaurant.PaymentModeLabel,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	for i := range invoiceItems {
		invoiceItems[i].InvoiceID = invoice.ID
	}
	if err := s.invoiceItemRepo.CreateBatch(ctx, invoiceItems); err != nil {
		// Back out the invoice row: an invoice without its line snapshots
		// would show up in history and the dashboard with totals but no
		// items. The drawn invoice number stays burned.
		if delErr := s.invoiceRepo.Delete(ctx, invoice.ID); delErr != nil {
			log.Printf("invoice %s: failed to back out after item insert error: %v", invoice.InvoiceNo, delErr)
		}
		return nil, err
	}

	return s.invoiceRepo.GetByID(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices newest first with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}
