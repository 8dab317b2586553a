package qrbill

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Slip geometry on an A4 page, in millimetres. The payment part
// occupies the bottom 105mm, split into the 62mm receipt on the left
// and the payment section on the right.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	slipHeight   = 105.0
	slipTop      = pageHeight - slipHeight
	receiptWidth = 62.0
	qrSize       = 46.0
	qrX          = 67.0
	qrY          = slipTop + 17.5
)

type labels struct {
	receipt      string
	paymentPart  string
	account      string
	reference    string
	payableBy    string
	currency     string
	amount       string
	acceptancePt string
}

var labelsByLanguage = map[string]labels{
	"FR": {
		receipt:      "Récépissé",
		paymentPart:  "Section paiement",
		account:      "Compte / Payable à",
		reference:    "Référence",
		payableBy:    "Payable par",
		currency:     "Monnaie",
		amount:       "Montant",
		acceptancePt: "Point de dépôt",
	},
	"DE": {
		receipt:      "Empfangsschein",
		paymentPart:  "Zahlteil",
		account:      "Konto / Zahlbar an",
		reference:    "Referenz",
		payableBy:    "Zahlbar durch",
		currency:     "Währung",
		amount:       "Betrag",
		acceptancePt: "Annahmestelle",
	},
	"EN": {
		receipt:      "Receipt",
		paymentPart:  "Payment part",
		account:      "Account / Payable to",
		reference:    "Reference",
		payableBy:    "Payable by",
		currency:     "Currency",
		amount:       "Amount",
		acceptancePt: "Acceptance point",
	},
}

// Renderer draws a QR-bill payment slip onto the bottom of the current
// PDF page. It validates the bill, encodes the Swiss Payment Code into
// a QR code and lays out the receipt and payment parts.
type Renderer struct{}

// NewRenderer creates a payment-slip renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Attach draws the slip on the current page of pdf. The caller is
// responsible for reserving the bottom 105mm of that page.
func (r *Renderer) Attach(pdf *gofpdf.Fpdf, bill Bill) error {
	payload, err := bill.Payload()
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(payload, qrcode.Medium, 512)
	if err != nil {
		return fmt.Errorf("qrbill: QR encoding failed: %w", err)
	}

	lang := strings.ToUpper(bill.Language)
	lbl, ok := labelsByLanguage[lang]
	if !ok {
		lbl = labelsByLanguage["FR"]
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	iban, _ := ValidateIBAN(bill.Account)

	// Separation rule above the slip.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(0, slipTop, pageWidth, slipTop)
	pdf.Line(receiptWidth, slipTop, receiptWidth, pageHeight)

	// Receipt part.
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(5, slipTop+5)
	pdf.CellFormat(receiptWidth-10, 5, tr(lbl.receipt), "", 0, "L", false, 0, "")

	y := slipTop + 12
	y = r.infoBlock(pdf, tr, 5, y, 52, lbl.account, []string{iban, bill.Creditor.Name, addressLine(bill.Creditor), placeLine(bill.Creditor)})
	if bill.Reference != "" {
		y = r.infoBlock(pdf, tr, 5, y, 52, lbl.reference, []string{bill.Reference})
	}
	y = r.infoBlock(pdf, tr, 5, y, 52, lbl.payableBy, []string{bill.Debtor.Name, addressLine(bill.Debtor), placeLine(bill.Debtor)})

	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(5, slipTop+68)
	pdf.CellFormat(18, 3, tr(lbl.currency), "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 3, tr(lbl.amount), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(5, slipTop+72)
	pdf.CellFormat(18, 4, strings.ToUpper(bill.Currency), "", 0, "L", false, 0, "")
	pdf.CellFormat(30, 4, bill.Amount.StringFixed(2), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(5, slipTop+82)
	pdf.CellFormat(receiptWidth-10, 3, tr(lbl.acceptancePt), "", 0, "R", false, 0, "")

	// Payment part.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(qrX, slipTop+5)
	pdf.CellFormat(80, 5, tr(lbl.paymentPart), "", 0, "L", false, 0, "")

	imageName := "qrbill-" + iban
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imageName, qrX, qrY, qrSize, qrSize, false, opts, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(qrX, qrY+qrSize+4)
	pdf.CellFormat(22, 4, tr(lbl.currency), "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 4, tr(lbl.amount), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(qrX, qrY+qrSize+9)
	pdf.CellFormat(22, 5, strings.ToUpper(bill.Currency), "", 0, "L", false, 0, "")
	pdf.CellFormat(35, 5, bill.Amount.StringFixed(2), "", 0, "L", false, 0, "")

	y = slipTop + 12
	y = r.infoBlock(pdf, tr, 118, y, 87, lbl.account, []string{iban, bill.Creditor.Name, addressLine(bill.Creditor), placeLine(bill.Creditor)})
	if bill.Reference != "" {
		y = r.infoBlock(pdf, tr, 118, y, 87, lbl.reference, []string{bill.Reference})
	}
	r.infoBlock(pdf, tr, 118, y, 87, lbl.payableBy, []string{bill.Debtor.Name, addressLine(bill.Debtor), placeLine(bill.Debtor)})

	return pdf.Error()
}

// infoBlock draws a bold label followed by its value lines and returns
// the y position below the block.
func (r *Renderer) infoBlock(pdf *gofpdf.Fpdf, tr func(string) string, x, y, width float64, label string, lines []string) float64 {
	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(x, y)
	pdf.CellFormat(width, 3, tr(label), "", 0, "L", false, 0, "")
	y += 3.5

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range lines {
		if line == "" {
			continue
		}
		pdf.SetXY(x, y)
		pdf.CellFormat(width, 3.5, tr(line), "", 0, "L", false, 0, "")
		y += 3.5
	}
	return y + 3
}

func addressLine(p Party) string {
	if p.BuildingNumber == "" {
		return p.Address
	}
	return p.Address + " " + p.BuildingNumber
}

func placeLine(p Party) string {
	return strings.TrimSpace(p.Zip + " " + p.City)
}
