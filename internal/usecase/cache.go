package usecase

import (
	"context"
	"time"
)

// ProUsersCacheKey holds the cached public listing; every write path that can
// change the listing deletes it.
const ProUsersCacheKey = "listing:pro-users"

type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

func invalidateProUsers(ctx context.Context, c ListingCache) {
	if c == nil {
		return
	}
	_ = c.Delete(ctx, ProUsersCacheKey)
}
