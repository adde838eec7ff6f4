package refund

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

var (
	ErrRequestNotFound  = errors.New("refund request not found")
	ErrAlreadyProcessed = errors.New("refund request already processed")
)

const requestColumns = `id, booking_id, user_id, reason, refund_amount, status, requested_at, processed_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithCancel(ctx context.Context, bookingID, userID int, reason string, refundAmount float64) (*Request, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var req Request
	err = tx.GetContext(ctx, &req, `
		INSERT INTO refund_requests (booking_id, user_id, reason, refund_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+requestColumns,
		bookingID, userID, reason, refundAmount, StatusPending)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE bookings SET status = $1, refund_amount = $2, updated_at = NOW()
		WHERE id = $3`,
		booking.StatusCancelled, refundAmount, bookingID)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, booking.ErrBookingNotFound
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &req, nil
}

func (r *repository) CancelOnly(ctx context.Context, bookingID int) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`,
		booking.StatusCancelled, bookingID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return booking.ErrBookingNotFound
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Request, error) {
	var req Request
	err := r.db.GetContext(ctx, &req, `SELECT `+requestColumns+` FROM refund_requests WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *repository) ListAll(ctx context.Context) ([]AdminView, error) {
	query := `
		SELECT rr.id, rr.booking_id, rr.user_id, rr.reason, rr.refund_amount, rr.status, rr.requested_at, rr.processed_at,
		       u.name AS user_name, u.email AS user_email,
		       p.name AS package_name, b.travel_date, b.total_price
		FROM refund_requests rr
		JOIN bookings b ON b.id = rr.booking_id
		JOIN users u ON u.id = rr.user_id
		JOIN packages p ON p.id = b.package_id
		ORDER BY rr.requested_at DESC`

	var views []AdminView
	if err := r.db.SelectContext(ctx, &views, query); err != nil {
		return nil, err
	}

	return views, nil
}

func (r *repository) Approve(ctx context.Context, id int) (*Request, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := updateRequestStatus(ctx, tx, id, StatusApproved)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE id = $2`,
		booking.PaymentStatusRefunded, req.BookingID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return req, nil
}

func (r *repository) Reject(ctx context.Context, id int) (*Request, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	req, err := updateRequestStatus(ctx, tx, id, StatusRejected)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return req, nil
}

// updateRequestStatus flips a Pending request to its processed state.
// The status predicate makes processing first-wins: a request already
// approved or rejected matches no row.
func updateRequestStatus(ctx context.Context, tx *sqlx.Tx, id int, status string) (*Request, error) {
	var req Request
	err := tx.GetContext(ctx, &req, `
		UPDATE refund_requests SET status = $1, processed_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING `+requestColumns,
		status, id, StatusPending)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlreadyProcessed
		}
		return nil, err
	}
	return &req, nil
}
