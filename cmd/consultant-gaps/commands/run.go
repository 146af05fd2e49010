package commands

import (
	"consultant-gaps/internal/pipeline"

	"github.com/spf13/cobra"
)

func init() {
	addReportFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrapes every consultant, saves them, then writes the gap report.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := createClient()
		if err != nil {
			return err
		}

		result, err := classify(cmd.Context(), pipeline.APISource{Fetcher: client})
		if err != nil {
			return err
		}
		err = pipeline.WriteConsultants(result.Consultants, cfg.Files.Consultants)
		if err != nil {
			return err
		}
		return writeReport(result)
	},
}
