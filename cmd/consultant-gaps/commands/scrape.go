package commands

import (
	"fmt"
	"log/slog"
	"time"

	"consultant-gaps/internal/pipeline"
	"consultant-gaps/internal/scrapers/swiftype"
	"consultant-gaps/internal/telemetry"

	"github.com/spf13/cobra"
)

var scrapeOutput string

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeOutput, "output", "o", "", "Consultants CSV to write (defaults to files.consultants).")
	rootCmd.AddCommand(scrapeCmd)
}

func createClient() (*swiftype.Client, error) {
	var output telemetry.MessageOutput
	if dumpHttp != "" {
		fsOutput, err := telemetry.NewFilesystemOutput(dumpHttp)
		if err != nil {
			return nil, fmt.Errorf("create http dump directory: %w", err)
		}
		output = fsOutput
	}
	return swiftype.NewClient(cfg.Search.options(), tel, output), nil
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [-o <path/to/consultants.csv>]",
	Short: "Fetches every consultant from the search api and writes them to a CSV.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := createClient()
		if err != nil {
			return err
		}
		slog.InfoContext(cmd.Context(), "starting consultant scrape", "endpoint", cfg.Search.Endpoint)

		t1 := time.Now()
		records, err := pipeline.APISource{Fetcher: client}.Records(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch consultants: %w", err)
		}
		t2 := time.Now()
		slog.InfoContext(cmd.Context(), "scraping time", "seconds", t2.Sub(t1).Seconds(), "records", len(records))

		return pipeline.WriteConsultants(records, orDefault(scrapeOutput, cfg.Files.Consultants))
	},
}
