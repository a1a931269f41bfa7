package worker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillra/vacancyworker/config"
	"skillra/vacancyworker/helpers"
	"skillra/vacancyworker/internal/crawl"
	"skillra/vacancyworker/internal/employer"
	"skillra/vacancyworker/internal/vacancy"
	"skillra/vacancyworker/services/cache"
	"skillra/vacancyworker/services/sink"
)

type memorySink struct {
	records []*vacancy.Record
	flushed bool
}

func (m *memorySink) Write(_ context.Context, record *vacancy.Record) error {
	m.records = append(m.records, record)
	return nil
}

func (m *memorySink) Flush(_ context.Context) error {
	m.flushed = true
	return nil
}

func (m *memorySink) Close() error { return nil }

type capturedNotifier struct {
	summaries []crawl.Summary
}

func (c *capturedNotifier) NotifySummary(summary crawl.Summary) error {
	c.summaries = append(c.summaries, summary)
	return nil
}

func newTestWorker(t *testing.T, snk *memorySink, notifier *capturedNotifier) (*Worker, *httptest.Server) {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/vacancy", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "0" || r.URL.Query().Get("experience") != "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`<html><body><a data-qa="serp-item__title" href="/vacancy/5">Вакансия</a></body></html>`))
	})
	mux.HandleFunc("/vacancy/5", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<h1 data-qa="vacancy-title">Разработчик</h1>
			<div data-qa="vacancy-salary">от 180 000 ₽</div>
		</body></html>`))
	})
	server := httptest.NewServer(mux)

	cfg := &config.Config{
		SearchURL:      server.URL + "/search/vacancy",
		VacancyHost:    server.URL,
		Query:          "go",
		AreaIDs:        []int{1},
		Limit:          10,
		RequestTimeout: 5 * time.Second,
	}
	fetcher := helpers.NewFetcher(cfg.RequestTimeout, nil)
	enricher := employer.NewEnricher(cfg.VacancyHost, fetcher, cache.NewMemoryService())
	controller := crawl.NewController(cfg, fetcher, enricher)
	return New(controller, []sink.RecordSink{snk}, nil, notifier, "@every 1h"), server
}

func TestWorkerRunCycle(t *testing.T) {
	snk := &memorySink{}
	notifier := &capturedNotifier{}
	w, server := newTestWorker(t, snk, notifier)
	defer server.Close()

	ran := w.RunCycle(context.Background())
	assert.True(t, ran)

	require.Len(t, snk.records, 1)
	assert.Equal(t, "5", snk.records[0].VacancyID)
	assert.True(t, snk.flushed)

	require.Len(t, notifier.summaries, 1)
	assert.Equal(t, 1, notifier.summaries[0].Admitted)
}

func TestWorkerSingleFlight(t *testing.T) {
	snk := &memorySink{}
	notifier := &capturedNotifier{}
	w, server := newTestWorker(t, snk, notifier)
	defer server.Close()

	// Simulate a cycle still in flight
	w.running.Store(true)
	ran := w.RunCycle(context.Background())
	assert.False(t, ran)
	assert.Empty(t, snk.records)

	w.running.Store(false)
	assert.True(t, w.RunCycle(context.Background()))
}
