package handler

import (
	"strconv"
	"time"

	"github.com/chingz/pos-api/internal/application/service"
	"github.com/chingz/pos-api/internal/domain/repository"
	"github.com/chingz/pos-api/internal/presentation/http/dto/request"
	"github.com/chingz/pos-api/internal/presentation/http/dto/response"
	"github.com/chingz/pos-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Create handles checkout: finalizes the bill into an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	items := make([]service.InvoiceItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = service.InvoiceItemInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		UserID:          *userID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DiscountPercent: req.DiscountPercent,
		Items:           items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// List handles listing invoices newest first
func (h *InvoiceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search: c.Query("search"),
	}

	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}

	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}
