package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetwork("fetcher", "request failed", cause)

	assert.Equal(t, "[network] fetcher: request failed - connection refused", err.Error())

	withoutCause := NewValidation("config", "limit must be positive")
	assert.Equal(t, "[validation] config: limit must be positive", withoutCause.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewStorage("csv", "write failed", cause)

	wrapped := fmt.Errorf("cycle aborted: %w", err)
	assert.True(t, errors.Is(wrapped, cause))

	var scrapeErr *ScrapeError
	assert.True(t, errors.As(wrapped, &scrapeErr))
	assert.Equal(t, ErrorTypeStorage, scrapeErr.Type)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, NewNetwork("fetcher", "timeout", nil).IsRetryable())
	assert.False(t, NewParsing("vacancy", "missing title", nil).IsRetryable())
	assert.False(t, NewRateLimit("fetcher", time.Minute).IsRetryable())
}

func TestNewRateLimitMessage(t *testing.T) {
	err := NewRateLimit("fetcher", 500*time.Second)
	assert.Contains(t, err.Message, "8m20s")
	assert.WithinDuration(t, time.Now(), err.Time, time.Minute)
}
