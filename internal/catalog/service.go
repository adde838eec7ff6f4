package catalog

import (
	"context"
	"errors"

	"github.com/hdcode14/otpbs-exploreease/internal/cache"
	"github.com/hdcode14/otpbs-exploreease/internal/logger"
)

type Service interface {
	Browse(ctx context.Context, filter ListFilter) ([]Package, error)
	Featured(ctx context.Context, limit int) ([]Package, error)
	Get(ctx context.Context, id int) (*Package, error)
	Compare(ctx context.Context, ids []int) ([]Package, error)
	ListAll(ctx context.Context) ([]Package, error)
	Create(ctx context.Context, req UpsertRequest) (*Package, error)
	Update(ctx context.Context, id int, req UpsertRequest) (*Package, error)
	Remove(ctx context.Context, id int) (deleted bool, err error)
	ToggleActive(ctx context.Context, id int) (*Package, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

// Browse serves the unfiltered active listing through the cache; any
// filter bypasses it and hits the database directly.
func (s *service) Browse(ctx context.Context, filter ListFilter) ([]Package, error) {
	if !filter.IsEmpty() || s.cache == nil {
		return s.repo.List(ctx, filter)
	}

	var cached []Package
	err := s.cache.Get(ctx, cache.CatalogKey, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Errorf("catalog cache read failed: %v", err)
	}

	packages, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cache.CatalogKey, packages); err != nil {
		logger.Errorf("catalog cache write failed: %v", err)
	}
	return packages, nil
}

func (s *service) Featured(ctx context.Context, limit int) ([]Package, error) {
	return s.repo.Featured(ctx, limit)
}

func (s *service) Get(ctx context.Context, id int) (*Package, error) {
	return s.repo.GetActiveByID(ctx, id)
}

// Compare fetches the active packages for a side-by-side view.
// Unknown or inactive ids are silently dropped from the result.
func (s *service) Compare(ctx context.Context, ids []int) ([]Package, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func (s *service) ListAll(ctx context.Context) ([]Package, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Create(ctx context.Context, req UpsertRequest) (*Package, error) {
	pkg, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return pkg, nil
}

func (s *service) Update(ctx context.Context, id int, req UpsertRequest) (*Package, error) {
	pkg, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return pkg, nil
}

// Remove hard-deletes a package unless bookings reference it, in which
// case it is deactivated instead so booking history stays intact. The
// returned flag reports which of the two happened.
func (s *service) Remove(ctx context.Context, id int) (bool, error) {
	inUse, err := s.repo.HasBookings(ctx, id)
	if err != nil {
		return false, err
	}

	if inUse {
		if err := s.repo.SetActive(ctx, id, false); err != nil {
			return false, err
		}
		s.invalidate(ctx)
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, err
	}
	s.invalidate(ctx)
	return true, nil
}

// ToggleActive flips a package between active and inactive and returns
// its new state.
func (s *service) ToggleActive(ctx context.Context, id int) (*Package, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetActive(ctx, id, !pkg.IsActive); err != nil {
		return nil, err
	}
	pkg.IsActive = !pkg.IsActive
	s.invalidate(ctx)
	return pkg, nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, cache.CatalogKey)
	}
}
