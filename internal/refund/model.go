package refund

import (
	"database/sql"
	"time"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Request struct {
	ID           int          `db:"id" json:"id"`
	BookingID    int          `db:"booking_id" json:"booking_id"`
	UserID       int          `db:"user_id" json:"user_id"`
	Reason       string       `db:"reason" json:"reason"`
	RefundAmount float64      `db:"refund_amount" json:"refund_amount"`
	Status       string       `db:"status" json:"status"`
	RequestedAt  time.Time    `db:"requested_at" json:"requested_at"`
	ProcessedAt  sql.NullTime `db:"processed_at" json:"-"`
}

// AdminView is a refund request joined with the customer and booking it
// belongs to, for the admin refunds page.
type AdminView struct {
	Request
	UserName    string  `db:"user_name" json:"user_name"`
	UserEmail   string  `db:"user_email" json:"user_email"`
	PackageName string  `db:"package_name" json:"package_name"`
	TravelDate  string  `db:"travel_date" json:"travel_date"`
	TotalPrice  float64 `db:"total_price" json:"total_price"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// CancelResult reports what cancelling a booking produced. Unpaid
// bookings are cancelled without a refund request.
type CancelResult struct {
	BookingID    int      `json:"booking_id"`
	RefundAmount float64  `json:"refund_amount"`
	Tier         string   `json:"tier,omitempty"`
	Request      *Request `json:"refund_request,omitempty"`
}
