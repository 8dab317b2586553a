package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is a single billed unit of work (hours x hourly rate).
// Total is caller-supplied; the calculator sums it as-is.
type LineItem struct {
	Position     string          `json:"position"`
	Hours        string          `json:"hours"`
	Description  string          `json:"description"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	Total        decimal.Decimal `json:"total"`
}

// Party identifies one side of the invoice (creditor or debtor).
// Account carries the creditor IBAN and stays empty for the debtor.
type Party struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	BuildingNumber string `json:"building_number"`
	Zip            string `json:"zip"`
	City           string `json:"city"`
	Country        string `json:"country"`
	Account        string `json:"account,omitempty"`
}

// Request aggregates everything one document generation needs.
type Request struct {
	Creditor      Party
	Debtor        Party
	Currency      string
	Reference     string
	InvoiceNumber string
	InvoiceDate   time.Time
	Items         []LineItem
	Adjustments   Adjustments
	Totals        TotalsInput
}

// Adjustments holds the optional pro-rata and rabais percentages.
// Show gates rendering only: when false, neither line appears but the
// percentages keep reducing the amounts. Build through NoAdjustments
// or NewAdjustments so negative percentages are rejected up front.
type Adjustments struct {
	ProRataPercent decimal.Decimal
	RabaisPercent  decimal.Decimal
	Show           bool
}

// NoAdjustments returns the zero adjustment set.
func NoAdjustments() Adjustments {
	return Adjustments{}
}

// NewAdjustments builds an adjustment set. Percentages must be >= 0
// whether or not the summary lines are shown.
func NewAdjustments(proRata, rabais decimal.Decimal, show bool) (Adjustments, error) {
	if proRata.IsNegative() {
		return Adjustments{}, invalidAdjustment("pro rata", proRata)
	}
	if rabais.IsNegative() {
		return Adjustments{}, invalidAdjustment("rabais", rabais)
	}
	return Adjustments{ProRataPercent: proRata, RabaisPercent: rabais, Show: show}, nil
}

// Active reports whether any adjustment line would render.
func (a Adjustments) Active() bool {
	return a.Show && (a.ProRataPercent.IsPositive() || a.RabaisPercent.IsPositive())
}

// totalsMode tags the two TotalsInput variants.
type totalsMode int

const (
	modeComputed totalsMode = iota
	modePreAggregated
)

// TotalsInput selects between deriving totals from the line items and
// trusting caller-supplied aggregates. Construct with ComputedTotals or
// PreAggregatedTotals; the zero value computes from items with a zero
// VAT rate.
type TotalsInput struct {
	mode      totalsMode
	vatRate   decimal.Decimal
	subtotal  decimal.Decimal
	vatAmount decimal.Decimal
	total     decimal.Decimal
}

// ComputedTotals derives subtotal, deductions, VAT and grand total from
// the request's line items and adjustments.
func ComputedTotals(vatRatePercent decimal.Decimal) TotalsInput {
	return TotalsInput{mode: modeComputed, vatRate: vatRatePercent}
}

// PreAggregatedTotals trusts the caller's subtotal/VAT/total instead of
// recomputing them. The form layer pre-aggregates in some flows.
func PreAggregatedTotals(subtotal, vatRatePercent, vatAmount, total decimal.Decimal) TotalsInput {
	return TotalsInput{
		mode:      modePreAggregated,
		vatRate:   vatRatePercent,
		subtotal:  subtotal,
		vatAmount: vatAmount,
		total:     total,
	}
}

// VATRatePercent exposes the VAT rate carried by either variant.
func (t TotalsInput) VATRatePercent() decimal.Decimal {
	return t.vatRate
}
