package receipt

import (
	"fmt"
	"strings"

	"github.com/chingz/pos-api/internal/domain/entity"
)

// BuildMessage renders the receipt as a compact WhatsApp text summary.
// WhatsApp renders *text* as bold; the discount line appears only when a
// discount was applied.
func BuildMessage(r *entity.Receipt) string {
	var b strings.Builder

	if r.Customer != "" {
		fmt.Fprintf(&b, "Hi %s, thank you for your order at %s!\n", r.Customer, r.Header.ShopName)
	} else {
		fmt.Fprintf(&b, "Thank you for your order at %s!\n", r.Header.ShopName)
	}
	fmt.Fprintf(&b, "*%s* | %s\n\n", r.InvoiceNo, r.TokenLabel)

	for _, item := range r.Items {
		fmt.Fprintf(&b, "- %dx %s: %s\n", item.Quantity, item.Name, money(r.CurrencySymbol, item.Total))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", money(r.CurrencySymbol, r.SubTotal))
	if r.Discount > 0 {
		fmt.Fprintf(&b, "Discount: -%s\n", money(r.CurrencySymbol, r.Discount))
	}
	fmt.Fprintf(&b, "GST (18%%): %s\n", money(r.CurrencySymbol, r.Tax))
	fmt.Fprintf(&b, "*Total: %s*\n\n", money(r.CurrencySymbol, r.Total))
	b.WriteString("Visit again!")

	return b.String()
}
