package services

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptDocument is the fully formatted receipt handed to the PDF
// renderer. All business formatting (dates, payment method, amount)
// happens before this point; rendering is pure layout.
type ReceiptDocument struct {
	ReceiptNumber   string
	CustomerName    string
	CustomerMobile  string
	CustomerAddress string
	ServiceName     string
	AppointmentDate string
	AppointmentTime string
	PaymentMethod   string
	ReceiptDate     string
	Amount          string
}

// BuildReceiptPDF renders a printable receipt document.
func BuildReceiptPDF(doc ReceiptDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(25, 25, 25)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetTextColor(0x60, 0x3D, 0x44)
	pdf.CellFormat(0, 14, "GLAMORA", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 8, "RECEIPT", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, "Receipt Number: "+doc.ReceiptNumber, "", 1, "C", false, 0, "")
	pdf.Ln(8)

	rows := [][2]string{}
	if doc.CustomerName != "" {
		rows = append(rows, [2]string{"Customer Name:", doc.CustomerName})
	}
	rows = append(rows,
		[2]string{"Service:", doc.ServiceName},
		[2]string{"Appointment Date:", doc.AppointmentDate},
		[2]string{"Appointment Time:", doc.AppointmentTime},
		[2]string{"Payment Method:", doc.PaymentMethod},
		[2]string{"Receipt Date:", doc.ReceiptDate},
	)
	if doc.CustomerMobile != "" {
		rows = append(rows, [2]string{"Mobile:", doc.CustomerMobile})
	}
	if doc.CustomerAddress != "" {
		rows = append(rows, [2]string{"Address:", doc.CustomerAddress})
	}

	labelWidth := 65.0
	valueWidth := 95.0

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(0xF5, 0xF5, 0xF5)
		pdf.CellFormat(labelWidth, 11, row[0], "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(valueWidth, 11, row[1], "1", 1, "R", false, 0, "")
	}

	// Total
	pdf.Ln(4)
	pdf.SetDrawColor(0x60, 0x3D, 0x44)
	pdf.SetLineWidth(0.8)
	x := pdf.GetX()
	y := pdf.GetY()
	pdf.Line(x, y, x+labelWidth+valueWidth, y)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(labelWidth, 12, "TOTAL AMOUNT:", "", 0, "L", false, 0, "")
	pdf.CellFormat(valueWidth, 12, doc.Amount, "", 1, "R", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 8, "Thank you for choosing GLAMORA!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
