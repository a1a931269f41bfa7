package sink

import (
	"context"

	"skillra/vacancyworker/internal/vacancy"
)

// RecordSink receives admitted vacancy records. A crawl cycle writes
// every record to every configured sink and flushes at the end.
type RecordSink interface {
	// Write persists one record
	Write(ctx context.Context, record *vacancy.Record) error

	// Flush makes all written records durable
	Flush(ctx context.Context) error

	// Close releases the sink's resources
	Close() error
}
