package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrBookingNotFound = errors.New("booking not found")

const detailColumns = `
	b.id, b.user_id, b.package_id, b.guests, b.travel_date, b.total_price,
	b.status, b.payment_status, b.refund_amount, b.booking_date, b.created_at, b.updated_at,
	p.name AS package_name, p.destination, p.duration, p.image,
	u.name AS user_name, u.email AS user_email,
	pay.payment_method, pay.transaction_id, pay.payment_date,
	pay.amount AS paid_amount, pay.status AS payment_row_status`

const detailJoins = `
	FROM bookings b
	JOIN packages p ON p.id = b.package_id
	JOIN users u ON u.id = b.user_id
	LEFT JOIN payments pay ON pay.booking_id = b.id`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID, packageID, guests int, travelDate string, totalPrice float64) (*Booking, error) {
	query := `
		INSERT INTO bookings (user_id, package_id, guests, travel_date, total_price, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, package_id, guests, travel_date, total_price, status, payment_status, refund_amount, booking_date, created_at, updated_at`

	var b Booking
	err := r.db.GetContext(ctx, &b, query,
		userID, packageID, guests, travelDate, totalPrice, StatusPending, PaymentStatusPending)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, user_id, package_id, guests, travel_date, total_price, status, payment_status, refund_amount, booking_date, created_at, updated_at
		FROM bookings WHERE id = $1`

	var b Booking
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &b, nil
}

func (r *repository) GetDetail(ctx context.Context, id int) (*Detail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE b.id = $1`

	var d Detail
	if err := r.db.GetContext(ctx, &d, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Detail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`

	var details []Detail
	if err := r.db.SelectContext(ctx, &details, query, userID); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Detail, error) {
	query := `SELECT ` + detailColumns + detailJoins + ` ORDER BY b.created_at DESC LIMIT $1`

	var details []Detail
	if err := r.db.SelectContext(ctx, &details, query, limit); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM packages) AS total_packages,
			(SELECT COUNT(*) FROM bookings) AS total_bookings,
			(SELECT COUNT(*) FROM bookings WHERE status = 'Confirmed') AS confirmed_bookings,
			(SELECT COUNT(*) FROM refund_requests WHERE status = 'Pending') AS pending_refunds,
			(SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE status = 'Confirmed') AS total_revenue`

	var s Stats
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, err
	}

	return &s, nil
}
