package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func itemsTotaling(totals ...string) []LineItem {
	items := make([]LineItem, len(totals))
	for i, t := range totals {
		items[i] = LineItem{
			Position:    "1.0",
			Description: "Nettoyage",
			Total:       dec(t),
		}
	}
	return items
}

func TestComputeTotalsSequentialDeductions(t *testing.T) {
	// Pro rata comes off the raw subtotal, rabais off what remains:
	// 1000 - 10% = 900, 900 - 10% = 810.
	adj, err := NewAdjustments(dec("10"), dec("10"), true)
	require.NoError(t, err)

	totals, err := ComputeTotals(itemsTotaling("1000"), adj, ComputedTotals(decimal.Zero))
	require.NoError(t, err)

	assert.True(t, totals.SubtotalRaw.Equal(dec("1000")), "raw subtotal %s", totals.SubtotalRaw)
	assert.True(t, totals.ProRataDeduction.Equal(dec("100")), "pro rata %s", totals.ProRataDeduction)
	assert.True(t, totals.RabaisDeduction.Equal(dec("90")), "rabais %s", totals.RabaisDeduction)
	assert.True(t, totals.SubtotalAdjusted.Equal(dec("810")), "adjusted %s", totals.SubtotalAdjusted)
	assert.True(t, totals.GrandTotal.Equal(dec("810")), "grand total %s", totals.GrandTotal)
}

func TestComputeTotalsWithVAT(t *testing.T) {
	totals, err := ComputeTotals(itemsTotaling("400", "600"), NoAdjustments(), ComputedTotals(dec("8.1")))
	require.NoError(t, err)

	assert.True(t, totals.SubtotalAdjusted.Equal(dec("1000")))
	assert.True(t, totals.VATAmount.Equal(dec("81")), "vat %s", totals.VATAmount)
	assert.True(t, totals.GrandTotal.Equal(dec("1081")), "grand total %s", totals.GrandTotal)
}

func TestComputeTotalsInvariants(t *testing.T) {
	tests := []struct {
		name    string
		items   []LineItem
		proRata string
		rabais  string
		vat     string
	}{
		{name: "no adjustments", items: itemsTotaling("250.50", "99.95"), proRata: "0", rabais: "0", vat: "8.1"},
		{name: "pro rata only", items: itemsTotaling("1250"), proRata: "2", rabais: "0", vat: "8.1"},
		{name: "rabais only", items: itemsTotaling("780", "120.40"), proRata: "0", rabais: "5", vat: "7.7"},
		{name: "both", items: itemsTotaling("333.33", "666.67"), proRata: "10", rabais: "10", vat: "8.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adj, err := NewAdjustments(dec(tt.proRata), dec(tt.rabais), true)
			require.NoError(t, err)

			totals, err := ComputeTotals(tt.items, adj, ComputedTotals(dec(tt.vat)))
			require.NoError(t, err)

			assert.True(t, totals.GrandTotal.Equal(totals.SubtotalAdjusted.Add(totals.VATAmount)),
				"grand total must equal adjusted subtotal plus VAT")
			assert.True(t, totals.SubtotalAdjusted.LessThanOrEqual(totals.SubtotalRaw),
				"adjusted subtotal must never exceed the raw subtotal")
			assert.True(t, totals.SubtotalRaw.Sub(totals.ProRataDeduction).Sub(totals.RabaisDeduction).Equal(totals.SubtotalAdjusted),
				"deductions must account for the full difference")
		})
	}
}

func TestComputeTotalsRejectsNegativePercentages(t *testing.T) {
	_, err := NewAdjustments(dec("-1"), decimal.Zero, true)
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	_, err = NewAdjustments(decimal.Zero, dec("-0.5"), false)
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	adj := Adjustments{ProRataPercent: dec("-3"), Show: true}
	_, err = ComputeTotals(itemsTotaling("100"), adj, ComputedTotals(decimal.Zero))
	assert.ErrorIs(t, err, ErrInvalidAdjustment)

	_, err = ComputeTotals(itemsTotaling("100"), NoAdjustments(), ComputedTotals(dec("-8.1")))
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}

func TestComputeTotalsPreAggregated(t *testing.T) {
	input := PreAggregatedTotals(dec("900"), dec("8.1"), dec("72.90"), dec("972.90"))

	totals, err := ComputeTotals(itemsTotaling("1000"), NoAdjustments(), input)
	require.NoError(t, err)

	// Caller aggregates pass through untouched; only the raw item sum is derived.
	assert.True(t, totals.SubtotalRaw.Equal(dec("1000")))
	assert.True(t, totals.SubtotalAdjusted.Equal(dec("900")))
	assert.True(t, totals.VATAmount.Equal(dec("72.90")))
	assert.True(t, totals.GrandTotal.Equal(dec("972.90")))
}

func TestComputeTotalsPreAggregatedDerivesDeductions(t *testing.T) {
	// Caller aggregates pass through untouched, but the deduction
	// amounts shown next to the percentages come off the raw item sum.
	adj, err := NewAdjustments(dec("10"), dec("5"), true)
	require.NoError(t, err)

	input := PreAggregatedTotals(dec("855"), dec("8.1"), dec("69.26"), dec("924.26"))
	totals, err := ComputeTotals(itemsTotaling("1000"), adj, input)
	require.NoError(t, err)

	assert.True(t, totals.ProRataDeduction.Equal(dec("100")), "pro rata %s", totals.ProRataDeduction)
	assert.True(t, totals.RabaisDeduction.Equal(dec("50")), "rabais %s", totals.RabaisDeduction)
	assert.True(t, totals.SubtotalAdjusted.Equal(dec("855")))
	assert.True(t, totals.GrandTotal.Equal(dec("924.26")))
}

func TestComputeTotalsHiddenAdjustmentsStillApply(t *testing.T) {
	adj, err := NewAdjustments(dec("10"), dec("10"), false)
	require.NoError(t, err)

	totals, err := ComputeTotals(itemsTotaling("1000"), adj, ComputedTotals(decimal.Zero))
	require.NoError(t, err)

	assert.True(t, totals.SubtotalAdjusted.Equal(dec("810")), "adjusted %s", totals.SubtotalAdjusted)
	assert.True(t, totals.GrandTotal.Equal(dec("810")), "grand total %s", totals.GrandTotal)
}

func TestComputeTotalsEmptyItems(t *testing.T) {
	totals, err := ComputeTotals(nil, NoAdjustments(), ComputedTotals(dec("8.1")))
	require.NoError(t, err)

	assert.True(t, totals.SubtotalRaw.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
