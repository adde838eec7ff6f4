package payment

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hdcode14/otpbs-exploreease/internal/booking"
	"github.com/hdcode14/otpbs-exploreease/internal/db"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
	"github.com/hdcode14/otpbs-exploreease/internal/metrics"
)

var (
	ErrLockContention       = errors.New("payment could not be recorded, storage busy")
	ErrDuplicateTransaction = errors.New("transaction id already used")
	ErrInvalidCardDetails   = errors.New("invalid card details")
	ErrInvalidUPIHandle     = errors.New("invalid UPI handle")
	ErrBankRequired         = errors.New("bank selection required")
	ErrUnsupportedMethod    = errors.New("unsupported payment method")
	ErrAmountMismatch       = errors.New("payment amount does not match booking total")
)

const (
	maxWriteAttempts = 5
	retryBaseDelay   = 500 * time.Millisecond
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

type Service interface {
	CreatePayment(ctx context.Context, userID int, req CreateRequest) (*Payment, error)
	ConfirmPayment(ctx context.Context, userID, bookingID int, req ConfirmRequest) (*ConfirmResult, error)
	GetByBookingID(ctx context.Context, userID, bookingID int, isAdmin bool) (*Payment, error)
}

type service struct {
	repo     Repository
	bookings booking.Repository
	sleep    func(ctx context.Context, d time.Duration) error
}

func NewService(repo Repository, bookings booking.Repository) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		sleep:    sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// CreatePayment records a pending payment against the caller's booking.
// The normalized amount must match the booking's snapshotted total.
// The write is retried up to five times when the database reports lock
// contention, backing off attempt x 500ms between tries. A duplicate
// transaction id aborts immediately when the caller supplied it, and is
// regenerated when it was ours.
func (s *service) CreatePayment(ctx context.Context, userID int, req CreateRequest) (*Payment, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrNotOwner
	}

	amount, err := NormalizeAmount(req.Amount)
	if err != nil {
		metrics.RecordPayment("create", "invalid")
		return nil, err
	}
	if math.Abs(amount-b.TotalPrice) >= 0.01 {
		metrics.RecordPayment("create", "invalid")
		return nil, ErrAmountMismatch
	}

	transactionID := strings.TrimSpace(req.TransactionID)
	generated := transactionID == ""
	if generated {
		transactionID = newTransactionID()
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		p, err := s.repo.Create(ctx, req.BookingID, userID, amount, req.PaymentMethod, transactionID)
		if err == nil {
			metrics.RecordPayment("create", "success")
			logger.WithFields(map[string]interface{}{
				"booking_id":     req.BookingID,
				"transaction_id": transactionID,
				"attempt":        attempt,
			}).Info("payment recorded")
			return p, nil
		}

		if db.IsUniqueViolation(err) {
			if !generated {
				metrics.RecordPayment("create", "duplicate")
				return nil, ErrDuplicateTransaction
			}
			transactionID = newTransactionID()
			continue
		}

		if !db.IsLockContention(err) {
			metrics.RecordPayment("create", "error")
			return nil, err
		}

		metrics.RecordPaymentRetry()
		logger.Warnf("payment write contended, attempt %d/%d for booking %d", attempt, maxWriteAttempts, req.BookingID)

		if attempt < maxWriteAttempts {
			if err := s.sleep(ctx, time.Duration(attempt)*retryBaseDelay); err != nil {
				return nil, err
			}
		}
	}

	metrics.RecordPayment("create", "contention")
	return nil, ErrLockContention
}

// ConfirmPayment validates the payment instrument and then finalizes
// booking, payment, and slot count in one transaction. Validation
// failure mutates nothing.
func (s *service) ConfirmPayment(ctx context.Context, userID, bookingID int, req ConfirmRequest) (*ConfirmResult, error) {
	if err := validateInstrument(req); err != nil {
		metrics.RecordPayment("confirm", "invalid")
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, booking.ErrNotOwner
	}

	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		result, err := s.repo.Confirm(ctx, bookingID, req.Method)
		if err == nil {
			if !result.AlreadyConfirmed {
				metrics.RecordPayment("confirm", "success")
				metrics.RecordBooking(booking.StatusConfirmed)
				metrics.SetSlotsAvailable(result.Booking.PackageID, result.RemainingSlots)
			}
			return result, nil
		}

		if !db.IsLockContention(err) {
			metrics.RecordPayment("confirm", "error")
			return nil, err
		}

		metrics.RecordPaymentRetry()
		logger.Warnf("confirmation contended, attempt %d/%d for booking %d", attempt, maxWriteAttempts, bookingID)

		if attempt < maxWriteAttempts {
			if err := s.sleep(ctx, time.Duration(attempt)*retryBaseDelay); err != nil {
				return nil, err
			}
		}
	}

	metrics.RecordPayment("confirm", "contention")
	return nil, ErrLockContention
}

func (s *service) GetByBookingID(ctx context.Context, userID, bookingID int, isAdmin bool) (*Payment, error) {
	p, err := s.repo.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID && !isAdmin {
		return nil, booking.ErrNotOwner
	}
	return p, nil
}

func validateInstrument(req ConfirmRequest) error {
	switch req.Method {
	case "card":
		number := strings.ReplaceAll(req.CardNumber, " ", "")
		if len(number) != 16 || !digitsOnly.MatchString(number) {
			return ErrInvalidCardDetails
		}
		if len(req.CardCVV) != 3 || !digitsOnly.MatchString(req.CardCVV) {
			return ErrInvalidCardDetails
		}
		if strings.TrimSpace(req.CardHolder) == "" || strings.TrimSpace(req.CardExpiry) == "" {
			return ErrInvalidCardDetails
		}
		return nil
	case "upi":
		if !strings.Contains(req.UPIID, "@") {
			return ErrInvalidUPIHandle
		}
		return nil
	case "netbanking":
		if strings.TrimSpace(req.Bank) == "" {
			return ErrBankRequired
		}
		return nil
	default:
		return ErrUnsupportedMethod
	}
}

func newTransactionID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TXN-" + hex[:12]
}
