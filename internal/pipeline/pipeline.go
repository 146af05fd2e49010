package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"consultant-gaps/internal/consultant"
	"consultant-gaps/internal/gaps"
	"consultant-gaps/internal/report"
	"consultant-gaps/lib/csvcodec"
)

type Pipeline struct {
	Source     Source
	Classifier gaps.Classifier
	// Treatments is nil when no procedures data is available.
	Treatments *gaps.TreatmentIndex
}

type Result struct {
	// Consultants are the records as the source produced them.
	Consultants []consultant.Record
	Records     []gaps.GapRecord
	Summary report.Summary
}

// Run produces records from the source, classifies each of them and
// summarizes the outcome.
func (p Pipeline) Run(ctx context.Context) (Result, error) {
	records, err := p.Source.Records(ctx)
	if err != nil {
		return Result{}, err
	}
	slog.InfoContext(ctx, "classifying consultants", "count", len(records), "treatments", p.Treatments.Len())

	classified := p.Classifier.ClassifyAll(records, p.Treatments)
	return Result{
		Consultants: records,
		Records:     classified,
		Summary:     report.Summarize(classified, p.Treatments.Len() > 0),
	}, nil
}

// WriteConsultants writes the raw consultant records to the 22 column
// consultants CSV.
func WriteConsultants(records []consultant.Record, path string) error {
	err := csvcodec.WriteFile(path, consultant.FlattenAll(records), consultant.Fields)
	if err != nil {
		return fmt.Errorf("write consultants csv: %w", err)
	}
	slog.Info("saved consultants", "path", path, "count", len(records))
	return nil
}

type OutputPaths struct {
	CSV  string
	HTML string
}

type RenderOptions struct {
	TopTreatments      int
	TreatmentDelimiter string
	GeneratedAt        time.Time
}

// WriteOutputs renders the gap CSV and HTML report for a result.
func WriteOutputs(result Result, builder *report.Builder, opts RenderOptions, paths OutputPaths) error {
	err := os.WriteFile(paths.CSV, []byte(report.RenderCSV(result.Records)), 0644)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	top := report.TopTreatments(result.Records, opts.TreatmentDelimiter, opts.TopTreatments)
	html, err := builder.RenderHTML(result.Records, result.Summary, top, opts.GeneratedAt)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	err = os.WriteFile(paths.HTML, []byte(html), 0644)
	if err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	slog.Info("wrote report", "csv", paths.CSV, "html", paths.HTML)
	return nil
}
