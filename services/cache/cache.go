package cache

import (
	"errors"
	"time"
)

// ErrCacheMiss is returned by every backend when a key is absent or
// expired.
var ErrCacheMiss = errors.New("cache: miss")

// CacheService is the byte cache shared by the employer enricher and
// the fetcher's rate-limit block.
type CacheService interface {
	// Get retrieves a value, ErrCacheMiss when absent
	Get(key string) ([]byte, error)

	// Set stores a value; zero expiration keeps it until deleted
	Set(key string, value []byte, expiration time.Duration) error

	// Delete removes a value
	Delete(key string) error
}
