package notify

import (
	"skillra/vacancyworker/internal/crawl"
)

// Notifier delivers crawl cycle summaries.
type Notifier interface {
	// NotifySummary sends the outcome of one finished crawl cycle
	NotifySummary(summary crawl.Summary) error
}
