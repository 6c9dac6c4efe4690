package webring

import (
	"context"
	"fmt"
)

var ErrRingNotFound = fmt.Errorf("ring not found")

// Store caches ring member lists between refreshes.
type Store interface {
	Put(ctx context.Context, ring string, members []string) error
	Get(ctx context.Context, ring string) ([]string, error)
	Close() error
}
