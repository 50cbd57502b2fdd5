package cli

import (
	"fmt"

	"dealstream/internal/infra/db"
	"dealstream/internal/pkg/config"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Applies pending database migrations.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := db.Migrate(cmd.Context(), pool); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
