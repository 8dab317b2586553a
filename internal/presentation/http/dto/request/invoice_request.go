package request

import "github.com/shopspring/decimal"

// InvoiceDebtorRequest is the invoice recipient. Either client_id or the
// inline address fields must be supplied.
type InvoiceDebtorRequest struct {
	ClientID       *string `json:"client_id" binding:"omitempty,uuid"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	BuildingNumber string  `json:"building_number"`
	Zip            string  `json:"zip"`
	City           string  `json:"city"`
	Country        string  `json:"country" binding:"omitempty,len=2"`
}

// InvoiceItemRequest is one billed table row
type InvoiceItemRequest struct {
	Position     string          `json:"position"`
	Hours        string          `json:"hours"`
	Description  string          `json:"description"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Total        decimal.Decimal `json:"total"`
}

// GenerateInvoiceRequest represents an invoice generation request
type GenerateInvoiceRequest struct {
	BankAccountID   *string              `json:"bank_account_id" binding:"omitempty,uuid"`
	Debtor          InvoiceDebtorRequest `json:"debtor" binding:"required"`
	InvoiceNumber   string               `json:"invoice_number" binding:"required"`
	InvoiceDate     string               `json:"invoice_date" binding:"omitempty,datetime=2006-01-02"`
	Reference       string               `json:"reference"`
	Items           []InvoiceItemRequest `json:"items" binding:"required,min=1"`
	ProRataPercent  decimal.Decimal      `json:"pro_rata_percent"`
	RabaisPercent   decimal.Decimal      `json:"rabais_percent"`
	ShowAdjustments bool                 `json:"show_adjustments"`
	VATRatePercent  decimal.Decimal      `json:"vat_rate_percent"`

	Subtotal  *decimal.Decimal `json:"subtotal"`
	VATAmount *decimal.Decimal `json:"vat_amount"`
	Total     *decimal.Decimal `json:"total"`
}
