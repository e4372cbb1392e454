package middleware

import (
	"errors"
	"strings"

	"github.com/chingz/pos-api/internal/domain/repository"
	infraRepo "github.com/chingz/pos-api/internal/infrastructure/repository"
	"github.com/chingz/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RestaurantHeader names the restaurant slug header used when the API is
// not served on a per-restaurant subdomain.
const RestaurantHeader = "X-Restaurant"

// ExtractSlugFromHost extracts the restaurant slug from a subdomain,
// e.g. "chingz-chinese.pos.example.com" -> "chingz-chinese".
func ExtractSlugFromHost(host string) (string, error) {
	// Remove port if present
	if idx := strings.LastIndex(host, ":"); idx != -1 {
		host = host[:idx]
	}

	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return "", errors.New("invalid subdomain")
	}
	return parts[0], nil
}

// RestaurantMiddleware resolves the restaurant from the X-Restaurant header
// or the subdomain and scopes the request to it. When the request is
// authenticated, the token's restaurant wins and a mismatch is rejected.
func RestaurantMiddleware(restaurantRepo repository.RestaurantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader(RestaurantHeader)
		if slug == "" {
			if fromHost, err := ExtractSlugFromHost(c.Request.Host); err == nil {
				slug = fromHost
			}
		}
		if slug == "" {
			// Nothing to resolve; auth claims may still scope the request
			c.Next()
			return
		}

		restaurant, err := restaurantRepo.GetBySlug(c.Request.Context(), slug)
		if err != nil || restaurant == nil {
			response.NotFound(c, "Restaurant not found")
			c.Abort()
			return
		}

		// An authenticated user can only act within their own restaurant
		if claimed, exists := c.Get("restaurant_id"); exists {
			if id, ok := claimed.(uuid.UUID); ok && id != uuid.Nil && id != restaurant.ID {
				response.Forbidden(c, "Access denied to this restaurant")
				c.Abort()
				return
			}
		}

		c.Set("restaurant_id", restaurant.ID)
		c.Set("restaurant", restaurant)

		ctx := infraRepo.WithRestaurant(c.Request.Context(), restaurant.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRestaurant ensures a valid restaurant context exists
func RequireRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, exists := c.Get("restaurant_id")
		if !exists {
			response.BadRequest(c, "Restaurant context required")
			c.Abort()
			return
		}

		id, ok := restaurantID.(uuid.UUID)
		if !ok || id == uuid.Nil {
			response.BadRequest(c, "Invalid restaurant context")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetRestaurantID retrieves the restaurant ID from gin context
func GetRestaurantID(c *gin.Context) uuid.UUID {
	restaurantID, exists := c.Get("restaurant_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := restaurantID.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
