package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"

	"skillra/vacancyworker/internal/vacancy"
	scrapeerr "skillra/vacancyworker/pkg/errors"
)

// CSVSink writes records to a CSV file, one row per record, with the
// full column header written up front. The file is truncated on open:
// each crawl cycle produces a fresh snapshot.
type CSVSink struct {
	file   *os.File
	writer *csv.Writer
}

func NewCSVSink(path string) (*CSVSink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, scrapeerr.NewStorage(path, "failed to create output directory", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, scrapeerr.NewStorage(path, "failed to create output file", err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(vacancy.CSVHeader()); err != nil {
		file.Close()
		return nil, scrapeerr.NewStorage(path, "failed to write CSV header", err)
	}
	return &CSVSink{file: file, writer: writer}, nil
}

func (s *CSVSink) Write(_ context.Context, record *vacancy.Record) error {
	if err := s.writer.Write(record.CSVRow()); err != nil {
		return scrapeerr.NewStorage(s.file.Name(), "failed to write CSV row", err)
	}
	return nil
}

func (s *CSVSink) Flush(_ context.Context) error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return scrapeerr.NewStorage(s.file.Name(), "failed to flush CSV", err)
	}
	return nil
}

func (s *CSVSink) Close() error {
	s.writer.Flush()
	return s.file.Close()
}
