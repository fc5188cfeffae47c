package usecase

import (
	"context"
	"log"

	"wynngrid/internal/repository"
)

type ListingUsecase interface {
	ListProUsers(ctx context.Context) ([]repository.ProUserRow, error)
}

type Listing struct {
	listing repository.ListingRepository
	cache   ListingCache
	logger  *log.Logger
}

func NewListingUsecase(listing repository.ListingRepository, cache ListingCache, logger *log.Logger) *Listing {
	return &Listing{listing: listing, cache: cache, logger: logger}
}

// ListProUsers serves the public pro directory through the cache. Rows are
// sanitized before they are cached, so credential material never leaves the
// repository layer.
func (s *Listing) ListProUsers(ctx context.Context) ([]repository.ProUserRow, error) {
	if s.cache != nil {
		var cached []repository.ProUserRow
		if ok, err := s.cache.GetJSON(ctx, ProUsersCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	rows, err := s.listing.ListProUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].User = sanitizeUser(rows[i].User)
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, ProUsersCacheKey, rows, 0); err != nil {
			s.logger.Printf("[Listing] cache write failed: %v", err)
		}
	}
	return rows, nil
}
