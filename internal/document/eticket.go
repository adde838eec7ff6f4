package document

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

// ETicket renders the travel voucher for a confirmed booking.
func ETicket(d *booking.Detail) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.Cell(0, 12, companyName+" E-Ticket")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking Reference: %s", bookingReference(d.ID)))
	pdf.Ln(12)

	section(pdf, "Passenger", [][2]string{
		{"Name", d.UserName},
		{"Email", d.UserEmail},
		{"Guests", fmt.Sprintf("%d", d.Guests)},
	})

	section(pdf, "Travel", [][2]string{
		{"Package", d.PackageName},
		{"Destination", d.Destination},
		{"Duration", d.Duration},
		{"Travel Date", d.TravelDate},
	})

	payment := [][2]string{
		{"Status", d.PaymentStatus},
		{"Amount", formatAmount(d.TotalPrice)},
	}
	if d.TransactionID.Valid {
		payment = append(payment, [2]string{"Transaction", d.TransactionID.String})
	}
	section(pdf, "Payment", payment)

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, "Carry a government-issued photo ID matching the passenger name. "+
		"Report to the departure point 30 minutes before the scheduled time. "+
		"This ticket is valid only for the travel date shown above.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string, rows [][2]string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, title)
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(40, 6, row[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, row[1], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
