package wishlist

import (
	"context"

	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
)

type Repository interface {
	Add(ctx context.Context, userID, packageID int) (added bool, err error)
	Remove(ctx context.Context, userID, packageID int) error
	List(ctx context.Context, userID int) ([]catalog.Package, error)
	PackageIDs(ctx context.Context, userID int) ([]int, error)
	Contains(ctx context.Context, userID, packageID int) (bool, error)
}
