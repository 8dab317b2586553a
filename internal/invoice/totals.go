package invoice

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Totals carries every amount the summary block renders. Values keep
// full precision; rounding to two digits happens at render time only.
type Totals struct {
	SubtotalRaw      decimal.Decimal
	ProRataDeduction decimal.Decimal
	RabaisDeduction  decimal.Decimal
	SubtotalAdjusted decimal.Decimal
	VATRatePercent   decimal.Decimal
	VATAmount        decimal.Decimal
	GrandTotal       decimal.Decimal
}

// ComputeTotals derives the invoice amounts from the line items and the
// adjustment percentages. Deductions compound sequentially: pro rata is
// taken off the raw subtotal, rabais off the value that remains, and VAT
// off the adjusted subtotal. With the pre-aggregated variant the caller
// amounts are taken as-is; the raw item sum and the deduction amounts
// (raw x percentage) are still derived so the summary lines can render.
func ComputeTotals(items []LineItem, adj Adjustments, input TotalsInput) (Totals, error) {
	if adj.ProRataPercent.IsNegative() {
		return Totals{}, invalidAdjustment("pro rata", adj.ProRataPercent)
	}
	if adj.RabaisPercent.IsNegative() {
		return Totals{}, invalidAdjustment("rabais", adj.RabaisPercent)
	}
	if input.vatRate.IsNegative() {
		return Totals{}, invalidAdjustment("vat rate", input.vatRate)
	}

	raw := decimal.Zero
	for _, item := range items {
		raw = raw.Add(item.Total)
	}

	if input.mode == modePreAggregated {
		totals := Totals{
			SubtotalRaw:      raw,
			SubtotalAdjusted: input.subtotal,
			VATRatePercent:   input.vatRate,
			VATAmount:        input.vatAmount,
			GrandTotal:       input.total,
		}
		if adj.ProRataPercent.IsPositive() {
			totals.ProRataDeduction = raw.Mul(adj.ProRataPercent).Div(oneHundred)
		}
		if adj.RabaisPercent.IsPositive() {
			totals.RabaisDeduction = raw.Mul(adj.RabaisPercent).Div(oneHundred)
		}
		return totals, nil
	}

	totals := Totals{
		SubtotalRaw:      raw,
		SubtotalAdjusted: raw,
		VATRatePercent:   input.vatRate,
	}

	if adj.ProRataPercent.IsPositive() {
		totals.ProRataDeduction = totals.SubtotalAdjusted.Mul(adj.ProRataPercent).Div(oneHundred)
		totals.SubtotalAdjusted = totals.SubtotalAdjusted.Sub(totals.ProRataDeduction)
	}

	if adj.RabaisPercent.IsPositive() {
		totals.RabaisDeduction = totals.SubtotalAdjusted.Mul(adj.RabaisPercent).Div(oneHundred)
		totals.SubtotalAdjusted = totals.SubtotalAdjusted.Sub(totals.RabaisDeduction)
	}

	totals.VATAmount = totals.SubtotalAdjusted.Mul(input.vatRate).Div(oneHundred)
	totals.GrandTotal = totals.SubtotalAdjusted.Add(totals.VATAmount)

	return totals, nil
}
