package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/chingz/pos-api/internal/domain/entity"
)

// receiptTemplate is a self-contained printable page. All user-entered text
// passes through html/template escaping; the @page rule sizes the sheet for
// the configured thermal paper width.
var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"money": func(symbol string, amount float64) string {
		return fmt.Sprintf("%s %.2f", symbol, amount)
	},
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Receipt.InvoiceNo}}</title>
<style>
@page { size: {{.PaperWidth}}mm auto; margin: 0; }
body { font-family: monospace; font-size: 12px; width: {{.PaperWidth}}mm; margin: 0 auto; padding: 8px; }
.center { text-align: center; }
.shop { font-size: 16px; font-weight: bold; }
.tagline { font-size: 11px; }
hr { border: none; border-top: 1px dashed #000; margin: 6px 0; }
table { width: 100%; border-collapse: collapse; }
td { padding: 1px 0; vertical-align: top; }
.qty { width: 12%; }
.amt { text-align: right; white-space: nowrap; }
.totals td { padding: 1px 0; }
.grand { font-weight: bold; font-size: 14px; }
.footer { margin-top: 8px; font-size: 11px; }
</style>
</head>
<body>
<div class="center">
{{- if .Receipt.Header.ShopName}}
<div class="shop">{{.Receipt.Header.ShopName}}</div>
{{- end}}
{{- if .Receipt.Header.Tagline}}
<div class="tagline">{{.Receipt.Header.Tagline}}</div>
{{- end}}
{{- if .Receipt.Header.Address}}
<div class="tagline">{{.Receipt.Header.Address}}</div>
{{- end}}
{{- if .Receipt.Header.Phone}}
<div class="tagline">Ph: {{.Receipt.Header.Phone}}</div>
{{- end}}
</div>
<hr>
<table>
<tr><td>{{.Receipt.InvoiceNo}}</td><td class="amt">{{.Receipt.TokenLabel}}</td></tr>
<tr><td>{{.Receipt.Date}}</td><td class="amt">{{.Receipt.PaymentMode}}</td></tr>
{{- if .Receipt.Customer}}
<tr><td colspan="2">Customer: {{.Receipt.Customer}}</td></tr>
{{- end}}
</table>
<hr>
<table>
{{- range .Receipt.Items}}
<tr><td class="qty">{{.Quantity}}x</td><td>{{.Name}}</td><td class="amt">{{money $.Receipt.CurrencySymbol .Total}}</td></tr>
{{- end}}
</table>
<hr>
<table class="totals">
<tr><td>Subtotal</td><td class="amt">{{money .Receipt.CurrencySymbol .Receipt.SubTotal}}</td></tr>
{{- if gt .Receipt.Discount 0.0}}
<tr><td>Discount</td><td class="amt">-{{money .Receipt.CurrencySymbol .Receipt.Discount}}</td></tr>
{{- end}}
<tr><td>GST (18%)</td><td class="amt">{{money .Receipt.CurrencySymbol .Receipt.Tax}}</td></tr>
<tr class="grand"><td>Total</td><td class="amt">{{money .Receipt.CurrencySymbol .Receipt.Total}}</td></tr>
</table>
<hr>
<div class="center footer">Thank you, visit again!</div>
</body>
</html>
`))

// RenderHTML renders the receipt as a self-contained printable HTML page.
func RenderHTML(r *entity.Receipt, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	err := receiptTemplate.Execute(&buf, struct {
		Receipt    *entity.Receipt
		PaperWidth int
	}{
		Receipt:    r,
		PaperWidth: opts.paperWidth(),
	})
	if err != nil {
		return nil, fmt.Errorf("receipt: html render failed: %w", err)
	}
	return buf.Bytes(), nil
}
