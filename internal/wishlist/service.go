package wishlist

import (
	"context"

	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
)

type Service interface {
	Add(ctx context.Context, userID, packageID int) (added bool, err error)
	Remove(ctx context.Context, userID, packageID int) error
	List(ctx context.Context, userID int) ([]catalog.Package, error)
	IDs(ctx context.Context, userID int) ([]int, error)
	Contains(ctx context.Context, userID, packageID int) (bool, error)
}

type service struct {
	repo     Repository
	packages catalog.Repository
}

func NewService(repo Repository, packages catalog.Repository) Service {
	return &service{repo: repo, packages: packages}
}

// Add verifies the package is active before saving it, so a wishlist
// never references a withdrawn or unknown package.
func (s *service) Add(ctx context.Context, userID, packageID int) (bool, error) {
	if _, err := s.packages.GetActiveByID(ctx, packageID); err != nil {
		return false, err
	}
	return s.repo.Add(ctx, userID, packageID)
}

func (s *service) Remove(ctx context.Context, userID, packageID int) error {
	return s.repo.Remove(ctx, userID, packageID)
}

func (s *service) List(ctx context.Context, userID int) ([]catalog.Package, error) {
	return s.repo.List(ctx, userID)
}

// IDs returns just the wishlisted package ids, used by listing pages to
// mark saved packages without fetching the full rows.
func (s *service) IDs(ctx context.Context, userID int) ([]int, error) {
	return s.repo.PackageIDs(ctx, userID)
}

func (s *service) Contains(ctx context.Context, userID, packageID int) (bool, error) {
	return s.repo.Contains(ctx, userID, packageID)
}
