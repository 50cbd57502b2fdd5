package cli

import (
	"context"
	"fmt"

	"dealstream/internal/usecase/commands"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(ingestCmd)
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Runs the ingestion pipeline once and prints how many offers were added.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var ingest commands.IngestCommands

		return withApp(cmd.Context(), func(ctx context.Context) error {
			result, err := ingest.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d, inserted %d, skipped %d in %s\n",
				result.Fetched, result.Inserted, result.Skipped, result.Duration)
			return nil
		}, &ingest)
	},
}
