package refund

import (
	"context"
	"errors"
	"time"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
	"github.com/hdcode14/otpbs-exploreease/internal/metrics"
)

var (
	ErrAlreadyCancelled = errors.New("booking already cancelled")
	ErrInvalidAction    = errors.New("action must be approve or reject")
)

type Service interface {
	CancelBooking(ctx context.Context, userID, bookingID int, reason string) (*CancelResult, error)
	ProcessRefund(ctx context.Context, requestID int, action string) (*Request, error)
	ListRequests(ctx context.Context) ([]AdminView, error)
}

type service struct {
	repo     Repository
	bookings booking.Repository
	now      func() time.Time
}

func NewService(repo Repository, bookings booking.Repository) Service {
	return &service{repo: repo, bookings: bookings, now: time.Now}
}

// CancelBooking cancels the caller's booking. A paid booking raises a
// refund request for the tiered amount and cancels in one transaction;
// an unpaid one is simply cancelled.
func (s *service) CancelBooking(ctx context.Context, userID, bookingID int, reason string) (*CancelResult, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrNotOwner
	}
	if b.Status == booking.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if b.PaymentStatus != booking.PaymentStatusPaid {
		if err := s.repo.CancelOnly(ctx, bookingID); err != nil {
			return nil, err
		}
		metrics.RecordBooking(booking.StatusCancelled)
		return &CancelResult{BookingID: bookingID}, nil
	}

	amount, tier := Evaluate(b.TotalPrice, b.TravelDate, s.now())

	req, err := s.repo.CreateWithCancel(ctx, bookingID, userID, reason, amount)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(booking.StatusCancelled)
	metrics.RecordRefundRequest(tier)
	logger.WithFields(map[string]interface{}{
		"booking_id":    bookingID,
		"refund_amount": amount,
		"tier":          tier,
	}).Info("refund requested")

	return &CancelResult{
		BookingID:    bookingID,
		RefundAmount: amount,
		Tier:         tier,
		Request:      req,
	}, nil
}

func (s *service) ProcessRefund(ctx context.Context, requestID int, action string) (*Request, error) {
	if _, err := s.repo.GetByID(ctx, requestID); err != nil {
		return nil, err
	}

	switch action {
	case "approve":
		return s.repo.Approve(ctx, requestID)
	case "reject":
		return s.repo.Reject(ctx, requestID)
	default:
		return nil, ErrInvalidAction
	}
}

func (s *service) ListRequests(ctx context.Context) ([]AdminView, error) {
	return s.repo.ListAll(ctx)
}
