package qrbill

import (
	"bytes"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererAttach(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	err := NewRenderer().Attach(pdf, testBill())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestRendererAttachUnknownLanguageFallsBackToFrench(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	bill := testBill()
	bill.Language = "IT"

	assert.NoError(t, NewRenderer().Attach(pdf, bill))
}

func TestRendererAttachInvalidIBAN(t *testing.T) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	bill := testBill()
	bill.Account = "DE89 3704 0044 0532 0130 00"

	err := NewRenderer().Attach(pdf, bill)
	assert.Error(t, err)
}
