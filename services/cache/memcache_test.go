package cache

import (
	"testing"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/stretchr/testify/assert"
)

// Requires a running memcached instance; skipped when unavailable.
func TestMemcacheService(t *testing.T) {
	mc := NewMemcacheService("localhost:11211")

	_, err := mc.client.Get("probe")
	if err != nil && err != memcache.ErrCacheMiss {
		t.Skip("memcached is not available, skipping test")
	}

	err = mc.Set("employer:https://hh.ru/employer/1", []byte(`{"employer_rating":4.2}`), time.Second)
	assert.NoError(t, err)

	value, err := mc.Get("employer:https://hh.ru/employer/1")
	assert.NoError(t, err)
	assert.Equal(t, `{"employer_rating":4.2}`, string(value))

	err = mc.Delete("employer:https://hh.ru/employer/1")
	assert.NoError(t, err)

	_, err = mc.Get("employer:https://hh.ru/employer/1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
