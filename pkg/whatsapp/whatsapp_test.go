package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{"bare local number gets country code", "9876543210", "91", "919876543210"},
		{"already prefixed number kept as-is", "919876543210", "91", "919876543210"},
		{"formatting stripped", "+91 98765-43210", "91", "919876543210"},
		{"spaces and dashes on local number", "98765 43210", "91", "919876543210"},
		{"empty input", "", "91", ""},
		{"no digits at all", "abc", "91", ""},
		{"default country code when blank", "9876543210", "", "919876543210"},
		{"short numbers left alone", "12345", "91", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw, tt.countryCode))
		})
	}
}

func TestBuildLink(t *testing.T) {
	link := BuildLink("919876543210", "Total: ₹354.00\nThank you!")

	assert.Equal(t, "919876543210", link.Phone)
	assert.True(t, strings.HasPrefix(link.Scheme, "whatsapp://send?phone=919876543210&text="))
	assert.True(t, strings.HasPrefix(link.Web, "https://wa.me/919876543210?text="))
	assert.Contains(t, link.Intent, "package=com.whatsapp")

	// Message text must be URL-escaped, newlines included.
	assert.NotContains(t, link.Web, "\n")
	assert.Contains(t, link.Web, "%0A")
}
