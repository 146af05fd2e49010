package pipeline

import (
	"context"
	"fmt"

	"consultant-gaps/internal/consultant"
	"consultant-gaps/lib/csvcodec"
)

// Source produces the consultant records a run classifies.
type Source interface {
	Records(ctx context.Context) ([]consultant.Record, error)
}

// Fetcher is the part of the search client an APISource needs.
type Fetcher interface {
	FetchAll(ctx context.Context) ([]consultant.Record, error)
}

// APISource pulls records from the search api.
type APISource struct {
	Fetcher Fetcher
}

func (s APISource) Records(ctx context.Context) ([]consultant.Record, error) {
	return s.Fetcher.FetchAll(ctx)
}

// CSVSource reads a consultants CSV written by a previous scrape.
type CSVSource struct {
	Path string
}

func (s CSVSource) Records(ctx context.Context) ([]consultant.Record, error) {
	_, rows, err := csvcodec.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read consultants csv: %w", err)
	}
	out := make([]consultant.Record, len(rows))
	for i, row := range rows {
		out[i] = consultant.FromStrings(row)
	}
	return out, nil
}
