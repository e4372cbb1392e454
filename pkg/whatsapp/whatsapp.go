// Package whatsapp builds WhatsApp deep links for handing a bill summary to
// the customer. The link is fire-and-forget: nothing here awaits a
// delivery response, and whether the device can open it is not detected.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultCountryCode is prefixed to bare 10-digit local numbers.
const DefaultCountryCode = "91"

// SanitizeDigits strips everything but digits from a phone number.
func SanitizeDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone reduces a raw phone number to digits and prefixes the
// country code when a bare 10-digit local number is supplied. An empty or
// digit-free input normalizes to "".
func NormalizePhone(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	digits := SanitizeDigits(raw)
	if digits == "" {
		return ""
	}
	if len(digits) == 10 {
		digits = countryCode + digits
	}
	return digits
}

// Link is the set of URLs a client can use to open WhatsApp with a
// pre-filled message. Which one works depends on the device; the web URL
// is the universal fallback.
type Link struct {
	Phone  string `json:"phone"`
	Scheme string `json:"scheme_url"` // whatsapp:// for iOS/desktop
	Intent string `json:"intent_url"` // Android intent
	Web    string `json:"web_url"`    // wa.me fallback
}

// BuildLink assembles deep-link URLs for a normalized phone and message
// text. Phone must already be in digits-only international form.
func BuildLink(phone, text string) Link {
	enc := url.QueryEscape(text)
	return Link{
		Phone:  phone,
		Scheme: fmt.Sprintf("whatsapp://send?phone=%s&text=%s", phone, enc),
		Intent: fmt.Sprintf("intent://send/?phone=%s&text=%s#Intent;scheme=whatsapp;package=com.whatsapp;end", phone, enc),
		Web:    fmt.Sprintf("https://wa.me/%s?text=%s", phone, enc),
	}
}
