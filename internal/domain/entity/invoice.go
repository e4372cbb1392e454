package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is a finalized bill. Amounts and item snapshots are frozen at
// checkout and never mutated afterwards.
type Invoice struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	UserID        uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	InvoiceNo     string         `gorm:"size:100;not null;uniqueIndex:idx_invoices_restaurant_no,composite:restaurant_id" json:"invoice_no"`
	TokenNo       int64          `gorm:"not null" json:"token_no"`
	CustomerName  string         `gorm:"size:255" json:"customer_name"`
	CustomerPhone string         `gorm:"size:20" json:"customer_phone"`
	SubTotal      int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Discount      int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Tax           int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Total         int64          `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	PaymentMode   string         `gorm:"size:50;default:'CASH'" json:"payment_mode"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Restaurant Restaurant    `gorm:"foreignKey:RestaurantID" json:"-"`
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal float64 `json:"subtotal"`
		Discount float64 `json:"discount"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}{
		Alias:    Alias(i),
		SubTotal: float64(i.SubTotal) / 100,
		Discount: float64(i.Discount) / 100,
		Tax:      float64(i.Tax) / 100,
		Total:    float64(i.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// TotalDecimal returns the grand total as a decimal
func (i *Invoice) TotalDecimal() float64 {
	return float64(i.Total) / 100
}

// InvoiceItem is a snapshot of one bill line. Name and unit price are
// copied from the menu item at checkout so later menu edits cannot
// rewrite history. Position preserves insertion order.
type InvoiceItem struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"invoice_id"`
	MenuItemID uuid.UUID      `gorm:"type:uuid;index" json:"menu_item_id"`
	Position   int            `gorm:"not null;default:0" json:"position"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	UnitPrice  int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Quantity   int            `gorm:"not null" json:"quantity"`
	Total      int64          `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	type Alias InvoiceItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(it),
		UnitPrice: float64(it.UnitPrice) / 100,
		Total:     float64(it.Total) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
