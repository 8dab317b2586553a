package qrbill

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Party is one side of the payment slip, in the structured ("S")
// address form the Swiss Payment Code expects.
type Party struct {
	Name           string
	Address        string
	BuildingNumber string
	Zip            string
	City           string
	Country        string
}

// Bill is the renderer input contract: creditor account plus both
// parties, the amount to collect and the payment reference.
type Bill struct {
	Account        string
	Creditor       Party
	Debtor         Party
	Currency       string
	Amount         decimal.Decimal
	Reference      string
	AdditionalInfo string
	Language       string
}

// Swiss Payment Code field length limits.
const (
	maxNameLen       = 70
	maxStreetLen     = 70
	maxBuildingLen   = 16
	maxZipLen        = 16
	maxCityLen       = 35
	maxCountryLen    = 2
	maxCurrencyLen   = 3
	maxReferenceLen  = 27
	maxAdditionalLen = 140
)

// ValidateIBAN normalizes an IBAN for the QR payload. Only CH and LI
// accounts are valid on a QR-bill, and both are exactly 21 characters
// once spaces are stripped.
func ValidateIBAN(iban string) (string, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(normalized) != 21 {
		return "", fmt.Errorf("qrbill: IBAN %q must be 21 characters, got %d", normalized, len(normalized))
	}
	if !strings.HasPrefix(normalized, "CH") && !strings.HasPrefix(normalized, "LI") {
		return "", fmt.Errorf("qrbill: IBAN %q must start with CH or LI", normalized)
	}
	return normalized, nil
}

// referenceType classifies the payment reference: a 27-digit QR
// reference is QRR, an ISO 11649 creditor reference is SCOR, anything
// else (including none) is NON.
func referenceType(ref string) string {
	if ref == "" {
		return "NON"
	}
	if strings.HasPrefix(ref, "RF") {
		return "SCOR"
	}
	if len(ref) == maxReferenceLen && strings.Trim(ref, "0123456789") == "" {
		return "QRR"
	}
	return "NON"
}

// Payload builds the 31-field Swiss Payment Code string embedded in the
// QR code: SPC header, version 0200, creditor, amount, debtor, reference
// and the EPD trailer, joined by CRLF.
func (b Bill) Payload() (string, error) {
	iban, err := ValidateIBAN(b.Account)
	if err != nil {
		return "", err
	}
	if b.Creditor.Name == "" {
		return "", fmt.Errorf("qrbill: creditor name is required")
	}

	reference := strings.ReplaceAll(b.Reference, " ", "")

	fields := []string{
		"SPC",  // QR type
		"0200", // version
		"1",    // coding: UTF-8
		iban,
		"S", // creditor address type
		truncate(b.Creditor.Name, maxNameLen),
		truncate(b.Creditor.Address, maxStreetLen),
		truncate(b.Creditor.BuildingNumber, maxBuildingLen),
		truncate(b.Creditor.Zip, maxZipLen),
		truncate(b.Creditor.City, maxCityLen),
		truncate(b.Creditor.Country, maxCountryLen),
		"", // ultimate creditor, reserved
		"",
		"",
		"",
		"",
		"",
		"",
		b.Amount.StringFixed(2),
		truncate(strings.ToUpper(b.Currency), maxCurrencyLen),
		"S", // debtor address type
		truncate(b.Debtor.Name, maxNameLen),
		truncate(b.Debtor.Address, maxStreetLen),
		truncate(b.Debtor.BuildingNumber, maxBuildingLen),
		truncate(b.Debtor.Zip, maxZipLen),
		truncate(b.Debtor.City, maxCityLen),
		truncate(b.Debtor.Country, maxCountryLen),
		referenceType(reference),
		truncate(reference, maxReferenceLen),
		truncate(b.AdditionalInfo, maxAdditionalLen),
		"EPD",
	}

	return strings.Join(fields, "\r\n"), nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
