package document

import (
	"bytes"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

func sampleDetail() *booking.Detail {
	return &booking.Detail{
		Booking: booking.Booking{
			ID: 42, UserID: 1, PackageID: 7, Guests: 2, TravelDate: "2026-10-15",
			TotalPrice: 25998, Status: booking.StatusConfirmed, PaymentStatus: booking.PaymentStatusPaid,
		},
		PackageName: "Goa Beach Escape",
		Destination: "Goa",
		Duration:    "4D / 3N",
		UserName:    "Asha Rao",
		UserEmail:   "asha@example.com",
		PaymentMethod: sql.NullString{String: "card", Valid: true},
		TransactionID: sql.NullString{String: "TXN-ABC123DEF456", Valid: true},
	}
}

func TestInvoiceProducesPDF(t *testing.T) {
	data, err := Invoice(sampleDetail())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestETicketProducesPDF(t *testing.T) {
	data, err := ETicket(sampleDetail())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestReportProducesPDF(t *testing.T) {
	stats := &booking.Stats{
		TotalUsers: 10, TotalPackages: 12, TotalBookings: 25,
		ConfirmedBookings: 18, PendingRefunds: 2, TotalRevenue: 350000,
	}
	recent := []booking.Detail{*sampleDetail()}

	data, err := Report(stats, recent, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestNumbering(t *testing.T) {
	assert.Equal(t, "INV-000042", invoiceNumber(42))
	assert.Equal(t, "BK-000042", bookingReference(42))
}
