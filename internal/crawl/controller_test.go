package crawl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillra/vacancyworker/config"
	"skillra/vacancyworker/helpers"
	"skillra/vacancyworker/internal/employer"
	"skillra/vacancyworker/services/cache"
)

const searchPageHTML = `<html><body>
<a data-qa="serp-item__title" href="/vacancy/1?from=search">Вакансия с зарплатой</a>
<a data-qa="serp-item__title" href="/vacancy/2?from=search">Вакансия без зарплаты</a>
</body></html>`

const vacancyWithSalaryHTML = `<html><body>
<h1 data-qa="vacancy-title">Go разработчик</h1>
<div data-qa="vacancy-salary">от 250 000 ₽</div>
<a data-qa="vacancy-company-name" href="/employer/9">Компания</a>
<div data-qa="vacancy-description"><p>Пишем сервисы на Go</p></div>
</body></html>`

const vacancyWithoutSalaryHTML = `<html><body>
<h1 data-qa="vacancy-title">Без зарплаты</h1>
<div data-qa="vacancy-description"><p>Зарплата по договорённости</p></div>
</body></html>`

func newCrawlServer(t *testing.T, employerFetches *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/search/vacancy", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "0" {
			// Pagination depth cap
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(searchPageHTML))
	})
	mux.HandleFunc("/vacancy/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(vacancyWithSalaryHTML))
	})
	mux.HandleFunc("/vacancy/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(vacancyWithoutSalaryHTML))
	})
	mux.HandleFunc("/employer/9", func(w http.ResponseWriter, r *http.Request) {
		employerFetches.Add(1)
		w.Write([]byte(`<html><body><div data-qa="employer-rating-value">4,0</div></body></html>`))
	})
	return httptest.NewServer(mux)
}

func newTestController(server *httptest.Server, limit int) *Controller {
	cfg := &config.Config{
		SearchURL:      server.URL + "/search/vacancy",
		VacancyHost:    server.URL,
		Query:          "go",
		AreaIDs:        []int{1},
		Limit:          limit,
		RequestTimeout: 5 * time.Second,
	}
	fetcher := helpers.NewFetcher(cfg.RequestTimeout, nil)
	enricher := employer.NewEnricher(cfg.VacancyHost, fetcher, cache.NewMemoryService())
	return NewController(cfg, fetcher, enricher)
}

func TestControllerRun(t *testing.T) {
	var employerFetches atomic.Int32
	server := newCrawlServer(t, &employerFetches)
	defer server.Close()

	controller := newTestController(server, 100)
	records, summary := controller.Run(context.Background())

	// One shard admits vacancy 1; the other four shards see it again
	// as a duplicate. Vacancy 2 never passes the salary gate.
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].VacancyID)
	assert.Equal(t, len(ExperienceShards)*2, summary.Processed)
	assert.Equal(t, 1, summary.Admitted)
	assert.Equal(t, len(ExperienceShards)-1, summary.Duplicates)
	assert.Equal(t, len(ExperienceShards), summary.NoSalary)
	assert.Equal(t, 0, summary.FetchFailures)

	// Employer profile fetched exactly once across the whole run
	assert.Equal(t, int32(1), employerFetches.Load())
	require.NotNil(t, records[0].EmployerRating)
	assert.Equal(t, 4.0, *records[0].EmployerRating)
}

func TestControllerRespectsLimit(t *testing.T) {
	var employerFetches atomic.Int32
	server := newCrawlServer(t, &employerFetches)
	defer server.Close()

	controller := newTestController(server, 1)
	records, summary := controller.Run(context.Background())

	assert.Len(t, records, 1)
	assert.Equal(t, 1, summary.Admitted)
	// The limit stops the crawl before the second link is processed
	assert.Equal(t, 1, summary.Processed)
}

func TestControllerCanceledContext(t *testing.T) {
	var employerFetches atomic.Int32
	server := newCrawlServer(t, &employerFetches)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	controller := newTestController(server, 100)
	records, summary := controller.Run(ctx)
	assert.Empty(t, records)
	assert.Equal(t, 0, summary.Processed)
}
