package invoice

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/lmf-services/backoffice-api/pkg/qrbill"
)

// Page geometry in millimetres (A4 portrait).
const (
	pageHeightMM    = 297.0
	marginLeftMM    = 20.0
	tableWidthMM    = 170.0
	creditorYMM     = 15.0
	debtorXMM       = 130.0
	debtorYMM       = 40.0
	dateYMM         = 65.0
	titleYMM        = 80.0
	tableTopFirstMM = 95.0
	tableTopContMM  = 35.0
	runningHeaderY  = 20.0
	slipHeightMM    = 105.0
	bottomMarginMM  = 10.0

	headerRowHeightMM = 9.0
	itemRowHeightMM   = 7.0
	summaryLineHeight = 7.0
	summaryGapMM      = 5.0
)

// Table column widths. Désignation takes the remainder of the 170mm table.
const (
	colPositionMM = 20.0
	colHoursMM    = 20.0
	colPriceMM    = 25.0
	colTotalMM    = 25.0
	colDescMM     = tableWidthMM - colPositionMM - colHoursMM - colPriceMM - colTotalMM
)

// SlipAttacher is the external payment-slip collaborator. The composer
// invokes it exactly once, on the final page.
type SlipAttacher interface {
	Attach(pdf *gofpdf.Fpdf, bill qrbill.Bill) error
}

// Composer turns an invoice Request into a finished PDF byte stream.
// Generation is all-or-nothing: any error discards the buffered pages.
type Composer struct {
	slips SlipAttacher
}

// NewComposer creates a composer that delegates the payment section to
// the given slip renderer.
func NewComposer(slips SlipAttacher) *Composer {
	return &Composer{slips: slips}
}

// pageCursor tracks the vertical drawing position on the current page.
// It is threaded through every drawing call instead of relying on the
// document's implicit position.
type pageCursor struct {
	y float64
}

func (c *pageCursor) advance(dy float64) {
	c.y += dy
}

// Generate validates the request, computes totals, plans the pagination
// and materializes the document. No bytes are returned on error.
func (c *Composer) Generate(req Request) ([]byte, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	totals, err := ComputeTotals(req.Items, req.Adjustments, req.Totals)
	if err != nil {
		return nil, err
	}

	lines := summaryLines(totals, req.Adjustments, req.Currency)
	summaryHeight := float64(len(lines))*summaryLineHeight + summaryGapMM

	contentHeight := pageHeightMM - tableTopFirstMM - slipHeightMM - bottomMarginMM
	plan, err := PlanLayout(contentHeight, headerRowHeightMM, itemRowHeightMM, summaryHeight, len(req.Items))
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(req.InvoiceDate)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for page := 1; page <= plan.PageCount; page++ {
		pdf.AddPage()

		cursor := &pageCursor{}
		if page == 1 {
			c.drawFirstPageHeader(pdf, tr, req, cursor)
		} else {
			c.drawRunningHeader(pdf, tr, req, page, cursor)
		}

		c.drawTableHeader(pdf, tr, cursor)

		start, end := plan.Rows(page)
		for _, item := range req.Items[start:end] {
			c.drawItemRow(pdf, tr, req.Currency, item, cursor)
		}

		if plan.IsLastPage(page) {
			c.drawSummary(pdf, tr, lines, cursor)

			bill := qrbill.Bill{
				Account:   req.Creditor.Account,
				Creditor:  slipParty(req.Creditor),
				Debtor:    slipParty(req.Debtor),
				Currency:  req.Currency,
				Amount:    totals.GrandTotal.Round(2),
				Reference: req.Reference,
				Language:  "FR",
			}
			if err := c.slips.Attach(pdf, bill); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrPaymentSlip, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: writing document failed: %w", err)
	}
	return buf.Bytes(), nil
}

func validateRequest(req Request) error {
	checks := []struct {
		name  string
		value string
	}{
		{"creditor name", req.Creditor.Name},
		{"creditor address", req.Creditor.Address},
		{"creditor zip", req.Creditor.Zip},
		{"creditor city", req.Creditor.City},
		{"creditor country", req.Creditor.Country},
		{"creditor account", req.Creditor.Account},
		{"debtor name", req.Debtor.Name},
		{"debtor address", req.Debtor.Address},
		{"debtor zip", req.Debtor.Zip},
		{"debtor city", req.Debtor.City},
		{"debtor country", req.Debtor.Country},
		{"currency", req.Currency},
		{"invoice number", req.InvoiceNumber},
	}
	for _, check := range checks {
		if check.value == "" {
			return missingField(check.name)
		}
	}
	return nil
}

func (c *Composer) drawFirstPageHeader(pdf *gofpdf.Fpdf, tr func(string) string, req Request, cursor *pageCursor) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)

	// Creditor block, top left.
	pdf.SetXY(marginLeftMM, creditorYMM)
	pdf.MultiCell(100, 5, tr(partyBlock(req.Creditor)), "", "L", false)

	// Debtor block, offset right and below.
	pdf.SetXY(debtorXMM, debtorYMM)
	pdf.MultiCell(70, 5, tr(partyBlock(req.Debtor)), "", "L", false)

	// Place and date, right aligned.
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(marginLeftMM, dateYMM)
	dateLine := fmt.Sprintf("%s le, %s", req.Creditor.City, frenchDate(req.InvoiceDate))
	pdf.CellFormat(tableWidthMM, 6, tr(dateLine), "", 0, "R", false, 0, "")

	// Invoice title.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeftMM, titleYMM)
	pdf.CellFormat(tableWidthMM, 7, tr("Facture "+req.InvoiceNumber), "", 0, "L", false, 0, "")

	cursor.y = tableTopFirstMM
}

func (c *Composer) drawRunningHeader(pdf *gofpdf.Fpdf, tr func(string) string, req Request, page int, cursor *pageCursor) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(marginLeftMM, runningHeaderY)
	header := fmt.Sprintf("Facture %s - Page %d", req.InvoiceNumber, page)
	pdf.CellFormat(tableWidthMM, 6, tr(header), "", 0, "L", false, 0, "")

	cursor.y = tableTopContMM
}

func (c *Composer) drawTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, cursor *pageCursor) {
	pdf.SetFillColor(74, 77, 81)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)

	pdf.SetXY(marginLeftMM, cursor.y)
	pdf.CellFormat(colPositionMM, headerRowHeightMM, tr("Position"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colHoursMM, headerRowHeightMM, tr("Heures"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colDescMM, headerRowHeightMM, tr("Désignation"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colPriceMM, headerRowHeightMM, tr("Prix/h"), "", 0, "R", true, 0, "")
	pdf.CellFormat(colTotalMM, headerRowHeightMM, tr("Total"), "", 0, "R", true, 0, "")

	cursor.advance(headerRowHeightMM)
}

func (c *Composer) drawItemRow(pdf *gofpdf.Fpdf, tr func(string) string, currency string, item LineItem, cursor *pageCursor) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)

	pdf.SetXY(marginLeftMM, cursor.y)
	pdf.CellFormat(colPositionMM, itemRowHeightMM, tr(item.Position), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colHoursMM, itemRowHeightMM, tr(item.Hours), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colDescMM, itemRowHeightMM, tr(item.Description), "B", 0, "L", false, 0, "")
	pdf.CellFormat(colPriceMM, itemRowHeightMM, formatAmount(currency, item.PricePerHour), "B", 0, "R", false, 0, "")
	pdf.CellFormat(colTotalMM, itemRowHeightMM, formatAmount(currency, item.Total), "B", 0, "R", false, 0, "")

	cursor.advance(itemRowHeightMM)
}

// summaryRule marks the ruling under a summary value: none, a single
// line for the VAT amount, a double line for the grand total.
type summaryRule int

const (
	ruleNone summaryRule = iota
	ruleSingle
	ruleDouble
)

type summaryLine struct {
	label    string
	value    string
	rule     summaryRule
	emphasis bool
}

// summaryLines assembles the totals block in its fixed order. Optional
// lines are omitted when adjustments are hidden or their value is zero.
func summaryLines(totals Totals, adj Adjustments, currency string) []summaryLine {
	var lines []summaryLine

	if adj.Active() {
		lines = append(lines, summaryLine{
			label: "Sous-total éléments :",
			value: formatAmount(currency, totals.SubtotalRaw),
		})
		if adj.ProRataPercent.IsPositive() {
			lines = append(lines, summaryLine{
				label: fmt.Sprintf("Pro Rata %s%% :", adj.ProRataPercent.String()),
				value: "-" + formatAmount(currency, totals.ProRataDeduction),
			})
		}
		if adj.RabaisPercent.IsPositive() {
			lines = append(lines, summaryLine{
				label: fmt.Sprintf("Rabais %s%% :", adj.RabaisPercent.String()),
				value: "-" + formatAmount(currency, totals.RabaisDeduction),
			})
		}
	}

	lines = append(lines,
		summaryLine{
			label: "Montant total HT :",
			value: formatAmount(currency, totals.SubtotalAdjusted),
		},
		summaryLine{
			label: fmt.Sprintf("TVA %s%%", totals.VATRatePercent.String()),
			value: formatAmount(currency, totals.VATAmount),
			rule:  ruleSingle,
		},
		summaryLine{
			label:    "Pour un montant total TTC :",
			value:    formatAmount(currency, totals.GrandTotal) + " TTC",
			rule:     ruleDouble,
			emphasis: true,
		},
	)

	return lines
}

func (c *Composer) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, lines []summaryLine, cursor *pageCursor) {
	cursor.advance(summaryGapMM)

	labelX := marginLeftMM + 15
	valueX := 145.0
	pdf.SetTextColor(0, 0, 0)

	for _, line := range lines {
		if line.emphasis {
			pdf.SetFont("Helvetica", "B", 12)
		} else {
			pdf.SetFont("Helvetica", "", 11)
		}

		pdf.SetXY(labelX, cursor.y)
		pdf.CellFormat(valueX-labelX, summaryLineHeight, tr(line.label), "", 0, "L", false, 0, "")
		pdf.SetXY(valueX, cursor.y)
		pdf.CellFormat(45, summaryLineHeight, tr(line.value), "", 0, "L", false, 0, "")

		valueWidth := pdf.GetStringWidth(tr(line.value))
		switch line.rule {
		case ruleSingle:
			pdf.Line(valueX, cursor.y+summaryLineHeight-1, valueX+valueWidth, cursor.y+summaryLineHeight-1)
		case ruleDouble:
			pdf.Line(valueX, cursor.y+summaryLineHeight-1, valueX+valueWidth, cursor.y+summaryLineHeight-1)
			pdf.Line(valueX, cursor.y+summaryLineHeight-0.3, valueX+valueWidth, cursor.y+summaryLineHeight-0.3)
		}

		cursor.advance(summaryLineHeight)
	}
}

// formatAmount renders "{CODE} {amount:.2f}" with no thousands separator.
func formatAmount(currency string, amount decimal.Decimal) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}

func partyBlock(p Party) string {
	street := p.Address
	if p.BuildingNumber != "" {
		street += " " + p.BuildingNumber
	}
	return fmt.Sprintf("%s\n%s\n%s %s", p.Name, street, p.Zip, p.City)
}

func slipParty(p Party) qrbill.Party {
	return qrbill.Party{
		Name:           p.Name,
		Address:        p.Address,
		BuildingNumber: p.BuildingNumber,
		Zip:            p.Zip,
		City:           p.City,
		Country:        p.Country,
	}
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// frenchDate renders an invoice date the way the documents spell it,
// e.g. "8 juillet 2025".
func frenchDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}
