// internal/cache/cache.go
package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// KeyValueCache stores rendered QR artifacts under derived keys.
//
// A ttlSeconds of zero means the entry is not stored at all; a negative value
// means the entry never expires.
type KeyValueCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
}
