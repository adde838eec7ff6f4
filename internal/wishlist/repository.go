package wishlist

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/hdcode14/otpbs-exploreease/internal/catalog"
)

var ErrItemNotFound = errors.New("wishlist item not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Add inserts the item unless it already exists. Re-adding the same
// package is a no-op, reported through the returned flag.
func (r *repository) Add(ctx context.Context, userID, packageID int) (bool, error) {
	query := `
		INSERT INTO wishlist_items (user_id, package_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, package_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, userID, packageID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *repository) Remove(ctx context.Context, userID, packageID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND package_id = $2`, userID, packageID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

func (r *repository) List(ctx context.Context, userID int) ([]catalog.Package, error) {
	query := `
		SELECT p.id, p.name, p.destination, p.category, p.duration, p.price, p.rating,
		       p.latitude, p.longitude, p.description, p.image, p.region,
		       p.itinerary, p.inclusions, p.available_slots, p.is_active, p.created_at
		FROM wishlist_items w
		JOIN packages p ON p.id = w.package_id
		WHERE w.user_id = $1 AND p.is_active = TRUE
		ORDER BY w.created_at DESC`

	var packages []catalog.Package
	if err := r.db.SelectContext(ctx, &packages, query, userID); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) PackageIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids,
		`SELECT package_id FROM wishlist_items WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) Contains(ctx context.Context, userID, packageID int) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND package_id = $2)`,
		userID, packageID)
	if err != nil {
		return false, err
	}
	return exists, nil
}
