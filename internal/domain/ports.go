package domain

import "context"

// ReviewStore holds the ordered review list, newest first.
type ReviewStore interface {
	List(ctx context.Context) ([]Review, error)
	// Insert places r at the front of the list and persists it.
	Insert(ctx context.Context, r Review) error
	// Delete removes the review with the given id and reports how many
	// records were removed (0 or 1). An unknown id is not an error.
	Delete(ctx context.Context, id string) (int, error)
	Close() error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
