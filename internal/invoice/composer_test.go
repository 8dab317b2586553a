package invoice

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmf-services/backoffice-api/pkg/qrbill"
)

// recordingAttacher counts slip attachments and can be told to fail.
type recordingAttacher struct {
	calls int
	bills []qrbill.Bill
	err   error
}

func (a *recordingAttacher) Attach(pdf *gofpdf.Fpdf, bill qrbill.Bill) error {
	a.calls++
	a.bills = append(a.bills, bill)
	return a.err
}

func testRequest(itemCount int) Request {
	items := make([]LineItem, itemCount)
	for i := range items {
		items[i] = LineItem{
			Position:     fmt.Sprintf("%d.0", i+1),
			Hours:        "8h00",
			Description:  "Nettoyage de fin de chantier",
			PricePerHour: dec("45"),
			Total:        dec("360"),
		}
	}

	return Request{
		Creditor: Party{
			Name:           "LMF Services Sàrl",
			Address:        "Rue de la Servette",
			BuildingNumber: "45",
			Zip:            "1202",
			City:           "Genève",
			Country:        "CH",
			Account:        "CH44 3199 9123 0008 8901 2",
		},
		Debtor: Party{
			Name:    "Immobilière du Lac SA",
			Address: "Quai du Mont-Blanc 3",
			Zip:     "1201",
			City:    "Genève",
			Country: "CH",
		},
		Currency:      "CHF",
		InvoiceNumber: "2025-041",
		InvoiceDate:   time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
		Items:         items,
		Adjustments:   NoAdjustments(),
		Totals:        ComputedTotals(dec("8.1")),
	}
}

func TestGenerateProducesPDF(t *testing.T) {
	attacher := &recordingAttacher{}
	composer := NewComposer(attacher)

	content, err := composer.Generate(testRequest(3))
	require.NoError(t, err)

	require.NotEmpty(t, content)
	assert.Equal(t, "%PDF", string(content[:4]))
	assert.Equal(t, 1, attacher.calls, "slip must be attached exactly once")

	require.Len(t, attacher.bills, 1)
	bill := attacher.bills[0]
	assert.Equal(t, "CH44 3199 9123 0008 8901 2", bill.Account)
	assert.Equal(t, "CHF", bill.Currency)
	// 3 x 360 = 1080, plus 8.1% VAT.
	assert.True(t, bill.Amount.Equal(dec("1167.48")), "slip amount %s", bill.Amount)
}

func TestGenerateMultiPageAttachesSlipOnce(t *testing.T) {
	attacher := &recordingAttacher{}
	composer := NewComposer(attacher)

	content, err := composer.Generate(testRequest(45))
	require.NoError(t, err)

	assert.NotEmpty(t, content)
	assert.Equal(t, 1, attacher.calls, "only the final page carries the slip")
}

func TestGenerateSlipFailureDiscardsDocument(t *testing.T) {
	attacher := &recordingAttacher{err: errors.New("IBAN must start with CH or LI")}
	composer := NewComposer(attacher)

	content, err := composer.Generate(testRequest(2))
	assert.ErrorIs(t, err, ErrPaymentSlip)
	assert.Nil(t, content, "no partial document on failure")
}

func TestGenerateRejectsMissingFields(t *testing.T) {
	composer := NewComposer(&recordingAttacher{})

	req := testRequest(1)
	req.Debtor.City = ""

	content, err := composer.Generate(req)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Nil(t, content)
}

func TestGenerateRejectsNegativeAdjustment(t *testing.T) {
	composer := NewComposer(&recordingAttacher{})

	req := testRequest(1)
	req.Adjustments = Adjustments{ProRataPercent: dec("-5"), Show: true}

	_, err := composer.Generate(req)
	assert.ErrorIs(t, err, ErrInvalidAdjustment)
}

func TestSummaryLinesOrderAndVisibility(t *testing.T) {
	adj, err := NewAdjustments(dec("10"), dec("5"), true)
	require.NoError(t, err)

	totals, err := ComputeTotals(itemsTotaling("1000"), adj, ComputedTotals(dec("8.1")))
	require.NoError(t, err)

	lines := summaryLines(totals, adj, "CHF")
	require.Len(t, lines, 6)

	assert.Equal(t, "Sous-total éléments :", lines[0].label)
	assert.Equal(t, "Pro Rata 10% :", lines[1].label)
	assert.Equal(t, "-CHF 100.00", lines[1].value)
	assert.Equal(t, "Rabais 5% :", lines[2].label)
	assert.Equal(t, "-CHF 45.00", lines[2].value)
	assert.Equal(t, "Montant total HT :", lines[3].label)
	assert.Equal(t, "CHF 855.00", lines[3].value)
	assert.Equal(t, "TVA 8.1%", lines[4].label)
	assert.Equal(t, ruleSingle, lines[4].rule)
	assert.Equal(t, "Pour un montant total TTC :", lines[5].label)
	assert.Equal(t, "CHF 924.26 TTC", lines[5].value)
	assert.Equal(t, ruleDouble, lines[5].rule)
	assert.True(t, lines[5].emphasis)
}

func TestSummaryLinesHiddenAdjustments(t *testing.T) {
	// Percentages present but hidden: neither the deduction lines nor the
	// raw subtotal line may render, yet the amounts still compound.
	adj, err := NewAdjustments(dec("10"), dec("5"), false)
	require.NoError(t, err)

	totals, err := ComputeTotals(itemsTotaling("1000"), adj, ComputedTotals(dec("8.1")))
	require.NoError(t, err)

	lines := summaryLines(totals, adj, "CHF")
	require.Len(t, lines, 3)

	assert.Equal(t, "Montant total HT :", lines[0].label)
	assert.Equal(t, "CHF 855.00", lines[0].value)
}

func TestSummaryLinesPreAggregatedAdjustments(t *testing.T) {
	// The form flow sends pre-computed aggregates alongside the visible
	// percentages; the deduction lines must still carry real amounts.
	adj, err := NewAdjustments(dec("10"), dec("5"), true)
	require.NoError(t, err)

	input := PreAggregatedTotals(dec("855"), dec("8.1"), dec("69.26"), dec("924.26"))
	totals, err := ComputeTotals(itemsTotaling("1000"), adj, input)
	require.NoError(t, err)

	lines := summaryLines(totals, adj, "CHF")
	require.Len(t, lines, 6)

	assert.Equal(t, "Pro Rata 10% :", lines[1].label)
	assert.Equal(t, "-CHF 100.00", lines[1].value)
	assert.Equal(t, "Rabais 5% :", lines[2].label)
	assert.Equal(t, "-CHF 50.00", lines[2].value)
	assert.Equal(t, "CHF 924.26 TTC", lines[5].value)
}

func TestGenerateHiddenAdjustmentsReduceSlipAmount(t *testing.T) {
	attacher := &recordingAttacher{}
	composer := NewComposer(attacher)

	req := testRequest(0)
	req.Items = itemsTotaling("1000")
	req.Totals = ComputedTotals(decimal.Zero)
	adj, err := NewAdjustments(dec("10"), dec("10"), false)
	require.NoError(t, err)
	req.Adjustments = adj

	_, err = composer.Generate(req)
	require.NoError(t, err)

	require.Len(t, attacher.bills, 1)
	// 1000 - 10% - 10% = 810 even though no adjustment line renders.
	assert.True(t, attacher.bills[0].Amount.Equal(dec("810")), "slip amount %s", attacher.bills[0].Amount)
}

func TestSummaryLinesZeroPercentOmitted(t *testing.T) {
	adj, err := NewAdjustments(dec("10"), decimal.Zero, true)
	require.NoError(t, err)

	totals, err := ComputeTotals(itemsTotaling("500"), adj, ComputedTotals(dec("8.1")))
	require.NoError(t, err)

	lines := summaryLines(totals, adj, "CHF")
	require.Len(t, lines, 5)
	assert.Equal(t, "Pro Rata 10% :", lines[1].label)
}

func TestFrenchDate(t *testing.T) {
	assert.Equal(t, "8 juillet 2025", frenchDate(time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 février 2024", frenchDate(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31 décembre 2023", frenchDate(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "CHF 1234.50", formatAmount("CHF", dec("1234.5")))
	assert.Equal(t, "EUR 0.10", formatAmount("EUR", dec("0.1")))
}
