package booking

import (
	"context"
	"errors"

	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
	"github.com/hdcode14/otpbs-exploreease/internal/metrics"
)

var (
	ErrSlotUnavailable = errors.New("not enough slots available")
	ErrNotOwner        = errors.New("booking belongs to another user")
)

type Service interface {
	CreateBooking(ctx context.Context, userID int, req CreateRequest) (*Booking, error)
	GetForUser(ctx context.Context, userID, bookingID int, isAdmin bool) (*Detail, error)
	MyBookings(ctx context.Context, userID int) ([]Detail, error)
	RecentBookings(ctx context.Context, limit int) ([]Detail, error)
	DashboardStats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo     Repository
	packages catalog.Repository
}

func NewService(repo Repository, packages catalog.Repository) Service {
	return &service{repo: repo, packages: packages}
}

// CreateBooking reserves a package at today's price. The total is
// snapshotted onto the booking row; no slot is consumed until payment
// is confirmed.
func (s *service) CreateBooking(ctx context.Context, userID int, req CreateRequest) (*Booking, error) {
	pkg, err := s.packages.GetActiveByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}

	if pkg.AvailableSlots < req.Guests {
		return nil, ErrSlotUnavailable
	}

	totalPrice := pkg.Price * float64(req.Guests)

	b, err := s.repo.Create(ctx, userID, req.PackageID, req.Guests, req.TravelDate, totalPrice)
	if err != nil {
		return nil, err
	}

	metrics.RecordBooking(StatusPending)
	logger.WithFields(map[string]interface{}{
		"booking_id": b.ID,
		"user_id":    userID,
		"package_id": req.PackageID,
		"guests":     req.Guests,
		"total":      totalPrice,
	}).Info("booking created")

	return b, nil
}

func (s *service) GetForUser(ctx context.Context, userID, bookingID int, isAdmin bool) (*Detail, error) {
	d, err := s.repo.GetDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if d.UserID != userID && !isAdmin {
		return nil, ErrNotOwner
	}

	return d, nil
}

func (s *service) MyBookings(ctx context.Context, userID int) ([]Detail, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) RecentBookings(ctx context.Context, limit int) ([]Detail, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *service) DashboardStats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
