package handler

import (
	"fmt"

	"github.com/chingz/pos-api/internal/application/service"
	"github.com/chingz/pos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles receipt rendering, printing and WhatsApp handoff
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Download renders an invoice's receipt as HTML or PDF. The attachment is
// named after the invoice number.
func (h *ReceiptHandler) Download(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	format := c.DefaultQuery("format", "pdf")
	switch format {
	case "html":
		out, r, err := h.receiptService.RenderHTML(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", r.InvoiceNo+".html"))
		c.Data(200, "text/html; charset=utf-8", out)

	case "pdf":
		out, r, err := h.receiptService.RenderPDF(c.Request.Context(), id)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", r.InvoiceNo+".pdf"))
		c.Data(200, "application/pdf", out)

	default:
		response.BadRequest(c, "Unknown format (use html or pdf)")
	}
}

// Print sends an invoice's receipt to the thermal printer
func (h *ReceiptHandler) Print(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	receipt, err := h.receiptService.Print(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt printed successfully", receipt)
}

// WhatsApp returns the deep link and pre-filled message for an invoice
func (h *ReceiptHandler) WhatsApp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	handoff, err := h.receiptService.BuildWhatsApp(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "WhatsApp link built successfully", handoff)
}

// PrinterStatus returns the printer connection status
func (h *ReceiptHandler) PrinterStatus(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.receiptService.GetPrinterStatus())
}
