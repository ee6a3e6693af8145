package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceiptPDF(t *testing.T) {
	doc := ReceiptDocument{
		ReceiptNumber:   "RCP001",
		CustomerName:    "Ava Reed",
		CustomerMobile:  "5551234567",
		CustomerAddress: "12 Main St, Springfield, IL 62704",
		ServiceName:     "Classic Haircut",
		AppointmentDate: "Sunday, June 15, 2025",
		AppointmentTime: "10:00 AM",
		PaymentMethod:   "Credit Card",
		ReceiptDate:     "June 15, 2025",
		Amount:          "$25.00",
	}

	pdfBytes, err := BuildReceiptPDF(doc)
	require.NoError(t, err)
	require.NotEmpty(t, pdfBytes)
	assert.Equal(t, "%PDF", string(pdfBytes[:4]))
}

func TestBuildReceiptPDFWithSparseDocument(t *testing.T) {
	pdfBytes, err := BuildReceiptPDF(ReceiptDocument{ReceiptNumber: "RCP002"})
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
}
