package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// RestaurantIDKey is the context key for the authenticated restaurant
	RestaurantIDKey ctxKey = "restaurant_id"
)

// RestaurantScope returns a GORM scope that filters by restaurant.
// This should be applied to all queries for restaurant-scoped entities.
func RestaurantScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if restaurant context missing
			// This prevents accidental cross-restaurant data access
			return db.Where("1 = 0")
		}
		return db.Where("restaurant_id = ?", restaurantID)
	}
}

// WithRestaurant adds restaurant ID to context
func WithRestaurant(ctx context.Context, restaurantID uuid.UUID) context.Context {
	return context.WithValue(ctx, RestaurantIDKey, restaurantID)
}

// GetRestaurantID extracts restaurant ID from context
func GetRestaurantID(ctx context.Context) (uuid.UUID, bool) {
	restaurantID, ok := ctx.Value(RestaurantIDKey).(uuid.UUID)
	return restaurantID, ok
}
