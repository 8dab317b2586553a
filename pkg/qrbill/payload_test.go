package qrbill

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBill() Bill {
	return Bill{
		Account: "CH44 3199 9123 0008 8901 2",
		Creditor: Party{
			Name:           "LMF Services Sàrl",
			Address:        "Rue de la Servette",
			BuildingNumber: "45",
			Zip:            "1202",
			City:           "Genève",
			Country:        "CH",
		},
		Debtor: Party{
			Name:    "Immobilière du Lac SA",
			Address: "Quai du Mont-Blanc 3",
			Zip:     "1201",
			City:    "Genève",
			Country: "CH",
		},
		Currency: "CHF",
		Amount:   decimal.RequireFromString("1167.48"),
		Language: "FR",
	}
}

func TestValidateIBAN(t *testing.T) {
	tests := []struct {
		name    string
		iban    string
		want    string
		wantErr bool
	}{
		{name: "spaced CH", iban: "CH44 3199 9123 0008 8901 2", want: "CH4431999123000889012"},
		{name: "compact CH", iban: "CH4431999123000889012", want: "CH4431999123000889012"},
		{name: "lowercase LI", iban: "li21 0881 0000 2324 013a a", want: "LI21088100002324013AA"},
		{name: "foreign country", iban: "DE89 3704 0044 0532 0130 00", wantErr: true},
		{name: "too short", iban: "CH44 3199", wantErr: true},
		{name: "empty", iban: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateIBAN(tt.iban)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadStructure(t *testing.T) {
	payload, err := testBill().Payload()
	require.NoError(t, err)

	fields := strings.Split(payload, "\r\n")
	require.Len(t, fields, 31)

	assert.Equal(t, "SPC", fields[0])
	assert.Equal(t, "0200", fields[1])
	assert.Equal(t, "1", fields[2])
	assert.Equal(t, "CH4431999123000889012", fields[3])
	assert.Equal(t, "S", fields[4])
	assert.Equal(t, "LMF Services Sàrl", fields[5])
	assert.Equal(t, "1167.48", fields[18])
	assert.Equal(t, "CHF", fields[19])
	assert.Equal(t, "S", fields[20])
	assert.Equal(t, "Immobilière du Lac SA", fields[21])
	assert.Equal(t, "NON", fields[27])
	assert.Equal(t, "", fields[28])
	assert.Equal(t, "EPD", fields[30])

	// Ultimate creditor block stays reserved.
	for i := 11; i <= 17; i++ {
		assert.Empty(t, fields[i], "field %d must be empty", i)
	}
}

func TestPayloadReferenceTypes(t *testing.T) {
	tests := []struct {
		name     string
		ref      string
		wantType string
		wantRef  string
	}{
		{name: "none", ref: "", wantType: "NON", wantRef: ""},
		{name: "QR reference", ref: "210000000003139471430009017", wantType: "QRR", wantRef: "210000000003139471430009017"},
		{name: "spaced QR reference", ref: "21 00000 00003 13947 14300 09017", wantType: "QRR", wantRef: "210000000003139471430009017"},
		{name: "creditor reference", ref: "RF18539007547034", wantType: "SCOR", wantRef: "RF18539007547034"},
		{name: "free text", ref: "FACTURE-2025-041", wantType: "NON", wantRef: "FACTURE-2025-041"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := testBill()
			bill.Reference = tt.ref

			payload, err := bill.Payload()
			require.NoError(t, err)

			fields := strings.Split(payload, "\r\n")
			assert.Equal(t, tt.wantType, fields[27])
			assert.Equal(t, tt.wantRef, fields[28])
		})
	}
}

func TestPayloadRejectsInvalidBill(t *testing.T) {
	bill := testBill()
	bill.Account = "FR76 3000 6000 0112 3456 7890 189"
	_, err := bill.Payload()
	assert.Error(t, err)

	bill = testBill()
	bill.Creditor.Name = ""
	_, err = bill.Payload()
	assert.Error(t, err)
}

func TestPayloadTruncatesLongFields(t *testing.T) {
	bill := testBill()
	bill.Creditor.Name = strings.Repeat("A", 90)

	payload, err := bill.Payload()
	require.NoError(t, err)

	fields := strings.Split(payload, "\r\n")
	assert.Len(t, fields[5], 70)
}
