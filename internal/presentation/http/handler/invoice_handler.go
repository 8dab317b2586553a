package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lmf-services/backoffice-api/internal/application/service"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/request"
	"github.com/lmf-services/backoffice-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice generation HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// GenerateInvoice renders an invoice PDF and streams it back
// @Summary Generate Invoice
// @Description Generate an invoice PDF with its payment slip
// @Tags invoices
// @Security BearerAuth
// @Accept json
// @Produce application/pdf
// @Param request body request.GenerateInvoiceRequest true "Invoice data"
// @Success 200 {file} binary
// @Failure 400 {object} response.APIResponse
// @Router /factures/generate [post]
func (h *InvoiceHandler) GenerateInvoice(c *gin.Context) {
	var req request.GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input, err := generateInvoiceInput(&req)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.invoiceService.GenerateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, "application/pdf", result.Content)
}

func generateInvoiceInput(req *request.GenerateInvoiceRequest) (*service.GenerateInvoiceInput, error) {
	input := &service.GenerateInvoiceInput{
		InvoiceNumber:   req.InvoiceNumber,
		Reference:       req.Reference,
		ProRataPercent:  req.ProRataPercent,
		RabaisPercent:   req.RabaisPercent,
		ShowAdjustments: req.ShowAdjustments,
		VATRatePercent:  req.VATRatePercent,
		Subtotal:        req.Subtotal,
		VATAmount:       req.VATAmount,
		Total:           req.Total,
	}

	if req.BankAccountID != nil {
		accountID, err := uuid.Parse(*req.BankAccountID)
		if err != nil {
			return nil, fmt.Errorf("invalid bank account ID")
		}
		input.BankAccountID = &accountID
	}

	if req.InvoiceDate != "" {
		date, err := time.Parse("2006-01-02", req.InvoiceDate)
		if err != nil {
			return nil, fmt.Errorf("invalid invoice date")
		}
		input.InvoiceDate = date
	}

	input.Debtor = service.DebtorInput{
		Name:           req.Debtor.Name,
		Address:        req.Debtor.Address,
		BuildingNumber: req.Debtor.BuildingNumber,
		Zip:            req.Debtor.Zip,
		City:           req.Debtor.City,
		Country:        req.Debtor.Country,
	}
	if req.Debtor.ClientID != nil {
		clientID, err := uuid.Parse(*req.Debtor.ClientID)
		if err != nil {
			return nil, fmt.Errorf("invalid client ID")
		}
		input.Debtor.ClientID = &clientID
	}

	for _, item := range req.Items {
		input.Items = append(input.Items, service.LineItemInput{
			Position:     item.Position,
			Hours:        item.Hours,
			Description:  item.Description,
			PricePerHour: item.PricePerHour,
			Total:        item.Total,
		})
	}

	return input, nil
}
