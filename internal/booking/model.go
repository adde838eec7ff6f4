package booking

import (
	"database/sql"
	"time"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// Booking records a reservation against a package. TotalPrice is the
// package price times guests, captured at creation; later package price
// changes never touch it.
type Booking struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	PackageID     int       `db:"package_id" json:"package_id"`
	Guests        int       `db:"guests" json:"guests"`
	TravelDate    string    `db:"travel_date" json:"travel_date"`
	TotalPrice    float64   `db:"total_price" json:"total_price"`
	Status        string    `db:"status" json:"status"`
	PaymentStatus string    `db:"payment_status" json:"payment_status"`
	RefundAmount  float64   `db:"refund_amount" json:"refund_amount"`
	BookingDate   time.Time `db:"booking_date" json:"booking_date"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Detail is the booking joined with its package, customer, and payment,
// as consumed by listings, invoices, and e-tickets.
type Detail struct {
	Booking
	PackageName        string          `db:"package_name" json:"package_name"`
	Destination        string          `db:"destination" json:"destination"`
	Duration           string          `db:"duration" json:"duration"`
	Image              string          `db:"image" json:"image"`
	UserName           string          `db:"user_name" json:"user_name"`
	UserEmail          string          `db:"user_email" json:"user_email"`
	PaymentMethod      sql.NullString  `db:"payment_method" json:"-"`
	TransactionID      sql.NullString  `db:"transaction_id" json:"-"`
	PaymentMadeAt      sql.NullTime    `db:"payment_date" json:"-"`
	PaidAmount         sql.NullFloat64 `db:"paid_amount" json:"-"`
	PaymentStatusValue sql.NullString  `db:"payment_row_status" json:"-"`
}

// CreateRequest carries the booking form. TravelDate must be an ISO
// calendar date.
type CreateRequest struct {
	PackageID  int    `json:"package_id" binding:"required,gt=0"`
	TravelDate string `json:"travel_date" binding:"required,traveldate"`
	Guests     int    `json:"guests" binding:"required,gt=0"`
}
