package usecase

import (
	"context"
	"time"
)

// MatchCache is the optional response cache in front of the matching
// pipeline. A nil cache means every request recomputes.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
