package refund

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
)

type MockRefundRepo struct {
	mock.Mock
}

func (m *MockRefundRepo) CreateWithCancel(ctx context.Context, bookingID, userID int, reason string, refundAmount float64) (*Request, error) {
	args := m.Called(ctx, bookingID, userID, reason, refundAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

func (m *MockRefundRepo) CancelOnly(ctx context.Context, bookingID int) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *MockRefundRepo) GetByID(ctx context.Context, id int) (*Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

func (m *MockRefundRepo) ListAll(ctx context.Context) ([]AdminView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]AdminView), args.Error(1)
}

func (m *MockRefundRepo) Approve(ctx context.Context, id int) (*Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

func (m *MockRefundRepo) Reject(ctx context.Context, id int) (*Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Request), args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, userID, packageID, guests int, travelDate string, totalPrice float64) (*booking.Booking, error) {
	args := m.Called(ctx, userID, packageID, guests, travelDate, totalPrice)
	return nil, args.Error(1)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetDetail(ctx context.Context, id int) (*booking.Detail, error) {
	args := m.Called(ctx, id)
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int) ([]booking.Detail, error) {
	args := m.Called(ctx, userID)
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListRecent(ctx context.Context, limit int) ([]booking.Detail, error) {
	args := m.Called(ctx, limit)
	return nil, args.Error(1)
}

func (m *MockBookingRepo) Stats(ctx context.Context) (*booking.Stats, error) {
	args := m.Called(ctx)
	return nil, args.Error(1)
}

func newTestService(repo Repository, bookings booking.Repository, now time.Time) *service {
	return &service{repo: repo, bookings: bookings, now: func() time.Time { return now }}
}

func paidBooking(travelDate string) *booking.Booking {
	return &booking.Booking{
		ID: 42, UserID: 1, TotalPrice: 10000, TravelDate: travelDate,
		Status: booking.StatusConfirmed, PaymentStatus: booking.PaymentStatusPaid,
	}
}

func TestCancelBookingPaidRaisesRefund(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockRefundRepo)
	bookings := new(MockBookingRepo)
	svc := newTestService(repo, bookings, now)

	bookings.On("GetByID", mock.Anything, 42).Return(paidBooking("2026-10-11"), nil)
	repo.On("CreateWithCancel", mock.Anything, 42, 1, "plans changed", 8000.0).
		Return(&Request{ID: 3, BookingID: 42, RefundAmount: 8000, Status: StatusPending}, nil)

	result, err := svc.CancelBooking(context.Background(), 1, 42, "plans changed")
	require.NoError(t, err)
	assert.Equal(t, 8000.0, result.RefundAmount)
	assert.Equal(t, TierEarly, result.Tier)
	require.NotNil(t, result.Request)
	assert.Equal(t, StatusPending, result.Request.Status)
	repo.AssertExpectations(t)
}

func TestCancelBookingUnpaidSkipsRefund(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockRefundRepo)
	bookings := new(MockBookingRepo)
	svc := newTestService(repo, bookings, now)

	b := paidBooking("2026-10-11")
	b.PaymentStatus = booking.PaymentStatusPending
	b.Status = booking.StatusPending
	bookings.On("GetByID", mock.Anything, 42).Return(b, nil)
	repo.On("CancelOnly", mock.Anything, 42).Return(nil)

	result, err := svc.CancelBooking(context.Background(), 1, 42, "")
	require.NoError(t, err)
	assert.Zero(t, result.RefundAmount)
	assert.Nil(t, result.Request)
	repo.AssertNotCalled(t, "CreateWithCancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBookingAlreadyCancelled(t *testing.T) {
	repo := new(MockRefundRepo)
	bookings := new(MockBookingRepo)
	svc := newTestService(repo, bookings, time.Now())

	b := paidBooking("2026-10-11")
	b.Status = booking.StatusCancelled
	bookings.On("GetByID", mock.Anything, 42).Return(b, nil)

	_, err := svc.CancelBooking(context.Background(), 1, 42, "")
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelBookingOwnership(t *testing.T) {
	repo := new(MockRefundRepo)
	bookings := new(MockBookingRepo)
	svc := newTestService(repo, bookings, time.Now())

	bookings.On("GetByID", mock.Anything, 42).Return(paidBooking("2026-10-11"), nil)

	_, err := svc.CancelBooking(context.Background(), 9, 42, "")
	assert.ErrorIs(t, err, booking.ErrNotOwner)
}

func TestProcessRefund(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		repo := new(MockRefundRepo)
		svc := newTestService(repo, new(MockBookingRepo), time.Now())

		repo.On("GetByID", mock.Anything, 3).Return(&Request{ID: 3, Status: StatusPending}, nil)
		repo.On("Approve", mock.Anything, 3).Return(&Request{ID: 3, Status: StatusApproved}, nil)

		req, err := svc.ProcessRefund(context.Background(), 3, "approve")
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, req.Status)
	})

	t.Run("reject", func(t *testing.T) {
		repo := new(MockRefundRepo)
		svc := newTestService(repo, new(MockBookingRepo), time.Now())

		repo.On("GetByID", mock.Anything, 3).Return(&Request{ID: 3, Status: StatusPending}, nil)
		repo.On("Reject", mock.Anything, 3).Return(&Request{ID: 3, Status: StatusRejected}, nil)

		req, err := svc.ProcessRefund(context.Background(), 3, "reject")
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, req.Status)
	})

	t.Run("bad action", func(t *testing.T) {
		repo := new(MockRefundRepo)
		svc := newTestService(repo, new(MockBookingRepo), time.Now())

		repo.On("GetByID", mock.Anything, 3).Return(&Request{ID: 3}, nil)

		_, err := svc.ProcessRefund(context.Background(), 3, "maybe")
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("unknown request", func(t *testing.T) {
		repo := new(MockRefundRepo)
		svc := newTestService(repo, new(MockBookingRepo), time.Now())

		repo.On("GetByID", mock.Anything, 99).Return(nil, ErrRequestNotFound)

		_, err := svc.ProcessRefund(context.Background(), 99, "approve")
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})
}
