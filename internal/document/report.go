package document

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

// Report renders the admin business summary: headline counts, confirmed
// revenue, and the latest bookings.
func Report(stats *booking.Stats, recent []booking.Detail, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, companyName+" Business Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated "+generatedAt.Format("02 Jan 2006 15:04"))
	pdf.Ln(12)

	section(pdf, "Summary", [][2]string{
		{"Registered users", fmt.Sprintf("%d", stats.TotalUsers)},
		{"Packages", fmt.Sprintf("%d", stats.TotalPackages)},
		{"Bookings", fmt.Sprintf("%d", stats.TotalBookings)},
		{"Confirmed bookings", fmt.Sprintf("%d", stats.ConfirmedBookings)},
		{"Pending refunds", fmt.Sprintf("%d", stats.PendingRefunds)},
		{"Revenue (confirmed)", formatAmount(stats.TotalRevenue)},
	})

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 7, "Recent Bookings")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(20, 7, "Ref", "1", 0, "L", true, 0, "")
	pdf.CellFormat(55, 7, "Package", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Customer", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Status", "1", 0, "L", true, 0, "")
	pdf.CellFormat(45, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, d := range recent {
		pdf.CellFormat(20, 7, bookingReference(d.ID), "1", 0, "L", false, 0, "")
		pdf.CellFormat(55, 7, d.PackageName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, d.UserName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, d.Status, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 7, formatAmount(d.TotalPrice), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
