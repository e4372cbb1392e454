package request

import "github.com/google/uuid"

// InvoiceItemRequest represents one bill line in checkout order
type InvoiceItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,min=1"`
}

// CreateInvoiceRequest represents a checkout request
type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name" binding:"max=255"`
	CustomerPhone   string               `json:"customer_phone" binding:"max=20"`
	DiscountPercent float64              `json:"discount_percent" binding:"min=0,max=100"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}
