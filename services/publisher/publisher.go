package publisher

import (
	"skillra/vacancyworker/internal/vacancy"
)

// Publisher delivers admitted vacancy records to downstream consumers.
type Publisher interface {
	// Publish sends a single record
	Publish(record *vacancy.Record) error

	// TrimStreams bounds the retained length of every stream
	TrimStreams() error

	// Close closes the underlying connection
	Close() error
}
