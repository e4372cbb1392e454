package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Staff roles. The POS only distinguishes owners (who manage the menu and
// staff) from cashiers (who bill and look at the dashboard).
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User is a staff account for one restaurant.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	RestaurantID uuid.UUID      `gorm:"type:uuid;not null;index" json:"restaurant_id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Password     string         `gorm:"size:255" json:"-"`
	Role         string         `gorm:"size:50;not null;default:'cashier'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
