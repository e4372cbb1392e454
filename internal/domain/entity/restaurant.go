package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Restaurant is the tenant: one restaurant's menu, invoices and staff all
// hang off its ID. The receipt header fields double as the print options
// for that restaurant's receipts.
type Restaurant struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:100;unique;not null;index" json:"slug"`
	Tagline   string         `gorm:"size:255" json:"tagline,omitempty"`
	Address   string         `gorm:"size:500" json:"address,omitempty"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	LogoURL   string         `gorm:"size:500" json:"logo_url,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Receipt options
	CurrencySymbol     string `gorm:"size:10;default:'Rs'" json:"currency_symbol"`
	TokenPrefix        string `gorm:"size:20;default:'Token#'" json:"token_prefix"`
	PaymentModeLabel   string `gorm:"size:50;default:'CASH'" json:"payment_mode_label"`
	DefaultCountryCode string `gorm:"size:5;default:'91'" json:"default_country_code"`

	// InvoiceSeq is the per-restaurant invoice counter. It is only ever
	// advanced through RestaurantRepository.NextInvoiceSeq.
	InvoiceSeq int64 `gorm:"default:0" json:"-"`
}

// BeforeCreate generates a UUID before creating a new restaurant
func (r *Restaurant) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Restaurant model
func (Restaurant) TableName() string {
	return "restaurants"
}
