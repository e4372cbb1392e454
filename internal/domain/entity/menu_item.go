package entity

import (
	"encoding/json"
	"time"

	"github.com/chingz/pos-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItem is one orderable dish or drink on a restaurant's menu.
type MenuItem struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID         `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	Price        int64             `gorm:"not null;default:0" json:"-"` // Stored in cents, excluded from JSON
	Category     enum.MenuCategory `gorm:"size:50;not null;default:'Uncategorized'" json:"category"`
	Recipe       *string           `gorm:"type:text" json:"recipe,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

// MarshalJSON custom marshaler to convert cents to decimal for API responses
func (m MenuItem) MarshalJSON() ([]byte, error) {
	type Alias MenuItem
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(m),
		Price: float64(m.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// PriceDecimal returns the price as a decimal
func (m *MenuItem) PriceDecimal() float64 {
	return float64(m.Price) / 100
}
