package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"consultant-gaps/internal/gaps"
	"consultant-gaps/internal/pipeline"
	"consultant-gaps/internal/report"

	"github.com/spf13/cobra"
)

var (
	analyzeInput      string
	analyzeProcedures string
	analyzeOutCSV     string
	analyzeOutHTML    string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", "", "Consultants CSV to read (defaults to files.consultants).")
	addReportFlags(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&analyzeProcedures, "procedures", "", "Procedures CSV to join, skipped when the file does not exist (defaults to files.procedures).")
	cmd.Flags().StringVar(&analyzeOutCSV, "out-csv", "", "Gap analysis CSV to write (defaults to files.output_csv).")
	cmd.Flags().StringVar(&analyzeOutHTML, "out-html", "", "HTML report to write (defaults to files.output_html).")
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// classify runs the shared pipeline over `source`, joining the procedures
// CSV when there is one.
func classify(ctx context.Context, source pipeline.Source) (pipeline.Result, error) {
	treatments, err := gaps.LoadTreatmentIndex(orDefault(analyzeProcedures, cfg.Files.Procedures))
	if err != nil {
		return pipeline.Result{}, fmt.Errorf("read procedures csv: %w", err)
	}

	p := pipeline.Pipeline{
		Source:     source,
		Classifier: gaps.NewClassifier(cfg.Classifier),
		Treatments: treatments,
	}
	return p.Run(ctx)
}

// writeReport writes the gap CSV and HTML report then prints the summary.
func writeReport(result pipeline.Result) error {
	builder, err := report.NewBuilder(report.Options{
		Title:  cfg.Report.Title,
		Styles: cfg.Report.Styles,
	})
	if err != nil {
		return fmt.Errorf("create report builder: %w", err)
	}

	err = pipeline.WriteOutputs(result, builder, pipeline.RenderOptions{
		TopTreatments:      cfg.Report.TopTreatments,
		TreatmentDelimiter: cfg.Report.TreatmentDelimiter,
		GeneratedAt:        time.Now(),
	}, pipeline.OutputPaths{
		CSV:  orDefault(analyzeOutCSV, cfg.Files.OutputCSV),
		HTML: orDefault(analyzeOutHTML, cfg.Files.OutputHTML),
	})
	if err != nil {
		return err
	}

	report.RenderTable(os.Stdout, result.Summary, cfg.Report.Styles)
	return nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [-i <path/to/consultants.csv>] [--procedures <path/to/procedures.csv>]",
	Short: "Classifies a previously scraped consultants CSV and writes the gap report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := pipeline.CSVSource{
			Path: orDefault(analyzeInput, cfg.Files.Consultants),
		}
		result, err := classify(cmd.Context(), source)
		if err != nil {
			return err
		}
		return writeReport(result)
	},
}
