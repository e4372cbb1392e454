package entity

// ReceiptHeader holds the restaurant header printed at the top of a receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Tagline  string `json:"tagline,omitempty"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LogoURL  string `json:"logo_url,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable bill. It is NOT a
// database entity — it is composed from an invoice and its restaurant's
// receipt options at render time.
type Receipt struct {
	Header         ReceiptHeader `json:"header"`
	InvoiceNo      string        `json:"invoice_no"`
	TokenLabel     string        `json:"token_label"` // e.g. "Token# 42"
	Date           string        `json:"date"`
	Customer       string        `json:"customer,omitempty"`
	PaymentMode    string        `json:"payment_mode,omitempty"`
	CurrencySymbol string        `json:"currency_symbol"`
	Items          []ReceiptItem `json:"items"`
	SubTotal       float64       `json:"subtotal"`
	Discount       float64       `json:"discount"`
	Tax            float64       `json:"tax"`
	Total          float64       `json:"total"`
}
