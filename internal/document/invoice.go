package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

const companyName = "ExploreEase"

// Invoice renders the payment invoice for a finalized booking. It only
// reads the joined row; nothing about the booking changes here.
func Invoice(d *booking.Detail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, companyName)
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Invoice %s", invoiceNumber(d.ID)))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Booking Reference: %s", bookingReference(d.ID)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("02 Jan 2006")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, d.UserName)
	pdf.Ln(6)
	pdf.Cell(0, 6, d.UserEmail)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Package", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Travel Date", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Guests", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(70, 8, fmt.Sprintf("%s (%s)", d.PackageName, d.Destination), "1", 0, "L", false, 0, "")
	pdf.CellFormat(35, 8, d.TravelDate, "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, fmt.Sprintf("%d", d.Guests), "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 8, formatAmount(d.TotalPrice), "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(60, 8, formatAmount(d.TotalPrice), "1", 1, "R", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 6, "Payment")
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", d.PaymentStatus))
	pdf.Ln(6)
	if d.PaymentMethod.Valid {
		pdf.Cell(0, 6, fmt.Sprintf("Method: %s", d.PaymentMethod.String))
		pdf.Ln(6)
	}
	if d.TransactionID.Valid {
		pdf.Cell(0, 6, fmt.Sprintf("Transaction: %s", d.TransactionID.String))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func invoiceNumber(bookingID int) string {
	return fmt.Sprintf("INV-%06d", bookingID)
}

func bookingReference(bookingID int) string {
	return fmt.Sprintf("BK-%06d", bookingID)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}
