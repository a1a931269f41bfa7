package sink

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"skillra/vacancyworker/internal/vacancy"
	scrapeerr "skillra/vacancyworker/pkg/errors"
)

const vacanciesDDL = `
CREATE TABLE IF NOT EXISTS vacancies (
	vacancy_id TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	scraped_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertVacancy = `
INSERT INTO vacancies (vacancy_id, payload)
VALUES ($1, $2)
ON CONFLICT (vacancy_id) DO UPDATE SET
	payload    = EXCLUDED.payload,
	scraped_at = now()`

// PostgresSink upserts each record as a JSONB payload keyed by
// vacancy id, so re-crawling a vacancy refreshes its row instead of
// duplicating it.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, databaseURL string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, scrapeerr.NewStorage("postgres", "failed to create connection pool", err)
	}
	if _, err := pool.Exec(ctx, vacanciesDDL); err != nil {
		pool.Close()
		return nil, scrapeerr.NewStorage("postgres", "failed to ensure vacancies table", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (s *PostgresSink) Write(ctx context.Context, record *vacancy.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return scrapeerr.NewStorage("postgres", "failed to encode record", err)
	}
	if _, err := s.pool.Exec(ctx, upsertVacancy, record.VacancyID, payload); err != nil {
		return scrapeerr.NewStorage("postgres", "failed to upsert vacancy "+record.VacancyID, err)
	}
	return nil
}

func (s *PostgresSink) Flush(_ context.Context) error {
	return nil
}

func (s *PostgresSink) Close() error {
	s.pool.Close()
	return nil
}
