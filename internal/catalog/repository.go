package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

var ErrPackageNotFound = errors.New("package not found")

const packageColumns = `id, name, destination, category, duration, price, rating, latitude, longitude, description, image, region, itinerary, inclusions, available_slots, is_active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active = TRUE`
	var args []interface{}

	if filter.Region != "" && filter.Region != "all" {
		args = append(args, filter.Region)
		query += fmt.Sprintf(" AND region = $%d", len(args))
	}

	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR destination ILIKE $%d OR description ILIKE $%d)", n, n, n)
	}

	switch filter.Sort {
	case "price_low":
		query += " ORDER BY price ASC"
	case "price_high":
		query += " ORDER BY price DESC"
	case "rating":
		query += " ORDER BY rating DESC"
	default:
		query += " ORDER BY name ASC"
	}

	var packages []Package
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) ListAll(ctx context.Context) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages ORDER BY created_at DESC`

	var packages []Package
	if err := r.db.SelectContext(ctx, &packages, query); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) Featured(ctx context.Context, limit int) ([]Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE is_active = TRUE ORDER BY id ASC LIMIT $1`

	var packages []Package
	if err := r.db.SelectContext(ctx, &packages, query, limit); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1`

	var pkg Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) GetActiveByID(ctx context.Context, id int) (*Package, error) {
	query := `SELECT ` + packageColumns + ` FROM packages WHERE id = $1 AND is_active = TRUE`

	var pkg Package
	if err := r.db.GetContext(ctx, &pkg, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) GetByIDs(ctx context.Context, ids []int) ([]Package, error) {
	if len(ids) == 0 {
		return []Package{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := `SELECT ` + packageColumns + ` FROM packages WHERE id IN (` +
		strings.Join(placeholders, ", ") + `) AND is_active = TRUE`

	var packages []Package
	if err := r.db.SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM packages`); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) Create(ctx context.Context, req UpsertRequest) (*Package, error) {
	query := `
		INSERT INTO packages (name, destination, category, duration, price, rating, latitude, longitude, description, image, region, itinerary, inclusions, available_slots)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + packageColumns

	image := req.Image
	if image == "" {
		image = "default.jpg"
	}

	var pkg Package
	err := r.db.GetContext(ctx, &pkg, query,
		req.Name, req.Destination, req.Category, req.Duration, req.Price, req.Rating,
		req.Latitude, req.Longitude, req.Description, image, req.Region,
		req.Itinerary, req.Inclusions, req.AvailableSlots)
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) Update(ctx context.Context, id int, req UpsertRequest) (*Package, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := `
		UPDATE packages
		SET name = $1, destination = $2, category = $3, duration = $4, price = $5, rating = $6,
		    latitude = $7, longitude = $8, description = $9, region = $10,
		    itinerary = $11, inclusions = $12, available_slots = $13, is_active = $14
		WHERE id = $15
		RETURNING ` + packageColumns

	var pkg Package
	err := r.db.GetContext(ctx, &pkg, query,
		req.Name, req.Destination, req.Category, req.Duration, req.Price, req.Rating,
		req.Latitude, req.Longitude, req.Description, req.Region,
		req.Itinerary, req.Inclusions, req.AvailableSlots, isActive, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE packages SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPackageNotFound
	}

	return nil
}

func (r *repository) HasBookings(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE package_id = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}

	return exists, nil
}
