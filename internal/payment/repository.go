package payment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

var ErrPaymentNotFound = errors.New("payment not found")

const paymentColumns = `id, booking_id, user_id, amount, payment_method, status, transaction_id, payment_date, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, bookingID, userID int, amount float64, method, transactionID string) (*Payment, error) {
	query := `
		INSERT INTO payments (booking_id, user_id, amount, payment_method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	var p Payment
	err := r.db.GetContext(ctx, &p, query, bookingID, userID, amount, method, StatusPending, transactionID)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) GetByBookingID(ctx context.Context, bookingID int) (*Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`

	var p Payment
	if err := r.db.GetContext(ctx, &p, query, bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return &p, nil
}

// Confirm finalizes a booking in one transaction: the booking row is
// locked, then the booking, its payment, and the package slot count
// move together or not at all. A booking that is already Confirmed is
// returned as-is; slots are never decremented twice.
func (r *repository) Confirm(ctx context.Context, bookingID int, method string) (*ConfirmResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var b booking.Booking
	err = tx.GetContext(ctx, &b, `
		SELECT id, user_id, package_id, guests, travel_date, total_price, status, payment_status, refund_amount, booking_date, created_at, updated_at
		FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	var p Payment
	err = tx.GetContext(ctx, &p, `SELECT `+paymentColumns+` FROM payments WHERE booking_id = $1 FOR UPDATE`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if b.Status == booking.StatusConfirmed {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return &ConfirmResult{Booking: b, Payment: p, AlreadyConfirmed: true}, nil
	}

	err = tx.GetContext(ctx, &b, `
		UPDATE bookings SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, package_id, guests, travel_date, total_price, status, payment_status, refund_amount, booking_date, created_at, updated_at`,
		booking.StatusConfirmed, booking.PaymentStatusPaid, bookingID)
	if err != nil {
		return nil, err
	}

	err = tx.GetContext(ctx, &p, `
		UPDATE payments SET status = $1, payment_method = $2, payment_date = NOW()
		WHERE booking_id = $3
		RETURNING `+paymentColumns,
		StatusSuccess, method, bookingID)
	if err != nil {
		return nil, err
	}

	var remaining int
	err = tx.GetContext(ctx, &remaining,
		`UPDATE packages SET available_slots = available_slots - $1 WHERE id = $2 RETURNING available_slots`,
		b.Guests, b.PackageID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &ConfirmResult{Booking: b, Payment: p, RemainingSlots: remaining}, nil
}
