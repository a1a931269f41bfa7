package sink

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillra/vacancyworker/internal/vacancy"
)

func TestCSVSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "vacancies.csv")
	snk, err := NewCSVSink(path)
	require.NoError(t, err)

	from := 100000
	record := &vacancy.Record{VacancyID: "1", Title: "Go developer", SalaryFrom: &from}
	require.NoError(t, snk.Write(context.Background(), record))
	require.NoError(t, snk.Flush(context.Background()))
	require.NoError(t, snk.Close())

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, vacancy.CSVHeader(), rows[0])
	assert.Equal(t, record.CSVRow(), rows[1])
	assert.Equal(t, "1", rows[1][0])
}

func TestCSVSinkTruncatesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vacancies.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o644))

	snk, err := NewCSVSink(path)
	require.NoError(t, err)
	require.NoError(t, snk.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale content")
}
