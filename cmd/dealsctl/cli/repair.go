package cli

import (
	"context"

	"dealstream/internal/usecase/commands"
	"dealstream/internal/usecase/queries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(repairCmd)
}

var repairCmd = &cobra.Command{
	Use:   "repair-categories",
	Short: "Rewrites legacy raw category labels to canonical categories.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			maintenance  commands.MaintenanceCommands
			offerQueries queries.OfferQueries
		)

		return withApp(cmd.Context(), func(ctx context.Context) error {
			remaps, err := maintenance.RepairCategories(ctx)
			if err != nil {
				return err
			}

			t := newTable()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Legacy label", "Category", "Rows"})
			for _, r := range remaps {
				t.AppendRow(table.Row{r.From, r.To.String(), r.Rows})
			}
			t.Render()

			counts, err := offerQueries.CountByCategory(ctx)
			if err != nil {
				return err
			}

			totals := newTable()
			totals.SetOutputMirror(cmd.OutOrStdout())
			totals.AppendHeader(table.Row{"Category", "Offers"})
			for _, c := range counts {
				totals.AppendRow(table.Row{c.Category, c.Total})
			}
			totals.Render()
			return nil
		}, &maintenance, &offerQueries)
	},
}
