package payment

import (
	"time"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

const (
	StatusPending = "Pending"
	StatusSuccess = "Success"
)

type Payment struct {
	ID            int       `db:"id" json:"id"`
	BookingID     int       `db:"booking_id" json:"booking_id"`
	UserID        int       `db:"user_id" json:"user_id"`
	Amount        float64   `db:"amount" json:"amount"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        string    `db:"status" json:"status"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	PaymentDate   time.Time `db:"payment_date" json:"payment_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// CreateRequest records a payment row against a booking. Amount accepts
// either a JSON number or a currency-formatted string; TransactionID is
// optional and generated when absent.
type CreateRequest struct {
	BookingID     int         `json:"booking_id" binding:"required,gt=0"`
	Amount        interface{} `json:"amount" binding:"required"`
	PaymentMethod string      `json:"payment_method" binding:"required"`
	TransactionID string      `json:"transaction_id"`
}

// ConfirmRequest carries the method-specific instrument fields checked
// before the booking is finalized.
type ConfirmRequest struct {
	Method     string `json:"method" binding:"required"`
	CardNumber string `json:"card_number"`
	CardHolder string `json:"card_holder"`
	CardExpiry string `json:"card_expiry"`
	CardCVV    string `json:"card_cvv"`
	UPIID      string `json:"upi_id"`
	Bank       string `json:"bank"`
}

// ConfirmResult is the post-confirmation snapshot of the booking and
// its payment. AlreadyConfirmed reports that the booking was finalized
// by an earlier call and nothing was mutated this time.
type ConfirmResult struct {
	Booking          booking.Booking `json:"booking"`
	Payment          Payment         `json:"payment"`
	RemainingSlots   int             `json:"remaining_slots"`
	AlreadyConfirmed bool            `json:"already_confirmed"`
}
