package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func bookingColumns() []string {
	return []string{
		"id", "user_id", "package_id", "guests", "travel_date", "total_price",
		"status", "payment_status", "refund_amount", "booking_date", "created_at", "updated_at",
	}
}

func TestRepositoryCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO bookings`)).
		WithArgs(1, 7, 3, "2026-10-15", 38997.0, StatusPending, PaymentStatusPending).
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow(42, 1, 7, 3, "2026-10-15", 38997.0, StatusPending, PaymentStatusPending, 0.0, now, now, now))

	b, err := repo.Create(context.Background(), 1, 7, 3, "2026-10-15", 38997)
	require.NoError(t, err)
	assert.Equal(t, 42, b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, PaymentStatusPending, b.PaymentStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows(bookingColumns()).
				AddRow(42, 1, 7, 3, "2026-10-15", 38997.0, StatusConfirmed, PaymentStatusPaid, 0.0, now, now, now))

		b, err := repo.GetByID(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE id = $1`)).
			WithArgs(999).
			WillReturnRows(sqlmock.NewRows(bookingColumns()))

		_, err := repo.GetByID(context.Background(), 999)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetDetail(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	now := time.Now()
	columns := append(bookingColumns(),
		"package_name", "destination", "duration", "image",
		"user_name", "user_email",
		"payment_method", "transaction_id", "payment_date", "paid_amount", "payment_row_status")

	mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN payments pay ON pay.booking_id = b.id`)).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(42, 1, 7, 3, "2026-10-15", 38997.0, StatusConfirmed, PaymentStatusPaid, 0.0, now, now, now,
				"Goa Beach Escape", "Goa", "4D / 3N", "goa.jpg",
				"Asha", "asha@example.com",
				"card", "TXN-ABC123", now, 38997.0, "Success"))

	d, err := repo.GetDetail(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Goa Beach Escape", d.PackageName)
	assert.Equal(t, "asha@example.com", d.UserEmail)
	assert.Equal(t, "TXN-ABC123", d.TransactionID.String)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryStats(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WillReturnRows(sqlmock.NewRows([]string{
			"total_users", "total_packages", "total_bookings",
			"confirmed_bookings", "pending_refunds", "total_revenue",
		}).AddRow(10, 12, 25, 18, 2, 350000.0))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 18, stats.ConfirmedBookings)
	assert.Equal(t, 350000.0, stats.TotalRevenue)
	assert.NoError(t, mock.ExpectationsWereMet())
}
