package service

import (
	"context"
	"fmt"
	"log"

	"github.com/chingz/pos-api/internal/domain/entity"
	"github.com/chingz/pos-api/internal/domain/repository"
	"github.com/chingz/pos-api/pkg/apperror"
	"github.com/chingz/pos-api/pkg/printer"
	"github.com/chingz/pos-api/pkg/receipt"
	"github.com/chingz/pos-api/pkg/whatsapp"
	"github.com/google/uuid"
)

// ReceiptService composes a Receipt from an invoice and its restaurant's
// options, and hands it to the renderers, the thermal printer or WhatsApp.
type ReceiptService struct {
	invoiceRepo    repository.InvoiceRepository
	restaurantRepo repository.RestaurantRepository
	printer        printer.Printer
	printerType    string
	paperWidth     int // mm
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	invoiceRepo repository.InvoiceRepository,
	restaurantRepo repository.RestaurantRepository,
	p printer.Printer,
	printerType string,
	paperWidth int,
) *ReceiptService {
	return &ReceiptService{
		invoiceRepo:    invoiceRepo,
		restaurantRepo: restaurantRepo,
		printer:        p,
		printerType:    printerType,
		paperWidth:     paperWidth,
	}
}

// BuildReceipt loads an invoice and composes its printable receipt
func (s *ReceiptService) BuildReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.Receipt, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, invoice.RestaurantID)
	if err != nil {
		return nil, err
	}
	if restaurant == nil {
		return nil, apperror.NewNotFoundError("Restaurant")
	}

	r := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: restaurant.Name,
			Tagline:  restaurant.Tagline,
			Address:  restaurant.Address,
			Phone:    restaurant.Phone,
			LogoURL:  restaurant.LogoURL,
		},
		InvoiceNo:      invoice.InvoiceNo,
		TokenLabel:     fmt.Sprintf("%s %d", restaurant.TokenPrefix, invoice.TokenNo),
		Date:           invoice.CreatedAt.Format("02/01/2006 15:04"),
		Customer:       invoice.CustomerName,
		PaymentMode:    invoice.PaymentMode,
		CurrencySymbol: restaurant.CurrencySymbol,
		SubTotal:       float64(invoice.SubTotal) / 100,
		Discount:       float64(invoice.Discount) / 100,
		Tax:            float64(invoice.Tax) / 100,
		Total:          float64(invoice.Total) / 100,
	}

	for _, item := range invoice.Items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.Total) / 100,
		})
	}

	return r, nil
}

func (s *ReceiptService) renderOptions() receipt.Options {
	opts := receipt.DefaultOptions()
	if s.paperWidth == receipt.Paper58mm {
		opts.PaperWidth = receipt.Paper58mm
	}
	return opts
}

// RenderHTML renders an invoice's receipt as printable HTML
func (s *ReceiptService) RenderHTML(ctx context.Context, invoiceID uuid.UUID) ([]byte, *entity.Receipt, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	out, err := receipt.RenderHTML(r, s.renderOptions())
	return out, r, err
}

// RenderPDF renders an invoice's receipt as a thermal-sized PDF
func (s *ReceiptService) RenderPDF(ctx context.Context, invoiceID uuid.UUID) ([]byte, *entity.Receipt, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, nil, err
	}
	out, err := receipt.RenderPDF(r, s.renderOptions())
	return out, r, err
}

// Print sends an invoice's receipt to the thermal printer. Transport
// failures surface as errors, never as silent no-ops.
func (s *ReceiptService) Print(ctx context.Context, invoiceID uuid.UUID) (*entity.Receipt, error) {
	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	data := FormatReceipt(r, s.paperWidth)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return r, fmt.Errorf("failed to print receipt: %w", err)
	}

	return r, nil
}

// WhatsAppHandoff is the deep link plus the pre-filled message for an invoice
type WhatsAppHandoff struct {
	Link    whatsapp.Link `json:"link"`
	Message string        `json:"message"`
}

// BuildWhatsApp builds the WhatsApp handoff for an invoice. The invoice
// must carry a customer phone.
func (s *ReceiptService) BuildWhatsApp(ctx context.Context, invoiceID uuid.UUID) (*WhatsAppHandoff, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.CustomerPhone == "" {
		return nil, apperror.NewBadRequestError("Invoice has no customer phone")
	}

	r, err := s.BuildReceipt(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	message := receipt.BuildMessage(r)
	return &WhatsAppHandoff{
		Link:    whatsapp.BuildLink(invoice.CustomerPhone, message),
		Message: message,
	}, nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetPrinterStatus returns printer connection status.
func (s *ReceiptService) GetPrinterStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// FormatReceipt converts a Receipt into ESC/POS bytes for the given paper
// width in mm.
func FormatReceipt(r *entity.Receipt, paperWidth int) []byte {
	chars := printer.Width80mm
	if paperWidth == 58 {
		chars = printer.Width58mm
	}
	doc := printer.NewDocument(chars)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Tagline != "" {
		doc.Text(r.Header.Tagline)
	}
	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Ph: %s", r.Header.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Token:", r.TokenLabel).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.PaymentMode != "" {
		doc.KeyValue("Payment:", r.PaymentMode)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", fmt.Sprintf("-%.2f", r.Discount))
	}
	doc.KeyValue("GST (18%):", fmt.Sprintf("%.2f", r.Tax))
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
