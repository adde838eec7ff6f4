package catalog

import "context"

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Package, error)
	ListAll(ctx context.Context) ([]Package, error)
	Featured(ctx context.Context, limit int) ([]Package, error)
	GetByID(ctx context.Context, id int) (*Package, error)
	GetActiveByID(ctx context.Context, id int) (*Package, error)
	GetByIDs(ctx context.Context, ids []int) ([]Package, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, req UpsertRequest) (*Package, error)
	Update(ctx context.Context, id int, req UpsertRequest) (*Package, error)
	SetActive(ctx context.Context, id int, active bool) error
	Delete(ctx context.Context, id int) error
	HasBookings(ctx context.Context, id int) (bool, error)
}
