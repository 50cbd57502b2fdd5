package cli

import (
	"context"

	"dealstream/internal/usecase/queries"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	offersCategory string
	offersLimit    int
)

func init() {
	offersCmd.Flags().StringVar(&offersCategory, "category", "", "only show this category")
	offersCmd.Flags().IntVar(&offersLimit, "limit", queries.DefaultOfferLimit, "max rows (at most 50)")
	rootCmd.AddCommand(offersCmd)
}

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Lists the most recent offers.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var offerQueries queries.OfferQueries

		return withApp(cmd.Context(), func(ctx context.Context) error {
			filter := queries.OfferFilter{Limit: offersLimit}
			if offersCategory != "" {
				filter.Category = &offersCategory
			}

			views, err := offerQueries.ListRecent(ctx, filter)
			if err != nil {
				return err
			}

			t := newTable()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Source", "External ID", "Title", "Category", "Price", "Created"})
			for _, v := range views {
				t.AppendRow(table.Row{v.ID, v.Source, v.ExternalID, v.Title, v.Category, v.Price, v.CreatedAt.Format("2006-01-02 15:04")})
			}
			t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(views)})
			t.Render()
			return nil
		}, &offerQueries)
	},
}
