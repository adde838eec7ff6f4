package refund

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

func newTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func requestRow(id int, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_id", "user_id", "reason", "refund_amount", "status", "requested_at", "processed_at",
	}).AddRow(id, 42, 1, "plans changed", 8000.0, status, time.Now(), nil)
}

func TestCreateWithCancelIsOneTransaction(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO refund_requests`)).
		WithArgs(42, 1, "plans changed", 8000.0, StatusPending).
		WillReturnRows(requestRow(3, StatusPending))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET status = $1, refund_amount = $2, updated_at = NOW()`)).
		WithArgs(booking.StatusCancelled, 8000.0, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req, err := repo.CreateWithCancel(context.Background(), 42, 1, "plans changed", 8000)
	require.NoError(t, err)
	assert.Equal(t, 3, req.ID)
	assert.Equal(t, StatusPending, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithCancelRollsBackOnMissingBooking(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO refund_requests`)).
		WithArgs(42, 1, "plans changed", 8000.0, StatusPending).
		WillReturnRows(requestRow(3, StatusPending))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET status = $1, refund_amount = $2, updated_at = NOW()`)).
		WithArgs(booking.StatusCancelled, 8000.0, 42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.CreateWithCancel(context.Background(), 42, 1, "plans changed", 8000)
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveMarksBookingRefunded(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE refund_requests SET status = $1, processed_at = NOW()`)).
		WithArgs(StatusApproved, 3, StatusPending).
		WillReturnRows(requestRow(3, StatusApproved))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs(booking.PaymentStatusRefunded, 42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req, err := repo.Approve(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRejectLeavesBookingAlone(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE refund_requests SET status = $1, processed_at = NOW()`)).
		WithArgs(StatusRejected, 3, StatusPending).
		WillReturnRows(requestRow(3, StatusRejected))
	mock.ExpectCommit()

	req, err := repo.Reject(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, req.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessingIsFirstWins(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE refund_requests SET status = $1, processed_at = NOW()`)).
		WithArgs(StatusApproved, 3, StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_id", "user_id", "reason", "refund_amount", "status", "requested_at", "processed_at",
		}))
	mock.ExpectRollback()

	_, err := repo.Approve(context.Background(), 3)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
