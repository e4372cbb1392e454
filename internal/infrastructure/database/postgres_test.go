package database

import (
	"testing"

	"github.com/chingz/pos-api/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRestaurantCarriesWhatsAppCountryCode(t *testing.T) {
	cfg := &config.Config{
		Restaurant: config.RestaurantConfig{
			Slug:    "chingz-chinese",
			Name:    "CHINGZ CHINESE",
			Tagline: "FAST FOOD",
			Address: "BAWARIYA KALAN BHOPAL",
		},
		WhatsApp: config.WhatsAppConfig{CountryCode: "971"},
	}

	restaurant := defaultRestaurant(cfg)

	assert.Equal(t, "chingz-chinese", restaurant.Slug)
	assert.Equal(t, "CHINGZ CHINESE", restaurant.Name)
	// Customer phone normalization falls back to this code, so the
	// configured value must reach the seeded row
	assert.Equal(t, "971", restaurant.DefaultCountryCode)
}
