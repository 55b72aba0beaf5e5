package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/jmorrow/flip-analyzer/internal/api/client"
)

func searchCmd() *cobra.Command {
	var (
		categoryID string
		limit      int
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search sold listings",
		Long: "Search eBay completed sales through the API server and print the\n" +
			"matching sold listings.",
		Example: `  flip-analyzer search nike air max 90 size 10

  # Restrict to a category with a larger page
  flip-analyzer search --category 15709 --limit 25 jordan 1 retro`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.Search(context.Background(), apiclient.SearchRequest{
				Query:      strings.Join(args, " "),
				CategoryID: categoryID,
				Limit:      limit,
				Offset:     offset,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Listings) == 0 {
				fmt.Println("No sold listings found.")
				return nil
			}

			fmt.Printf("Showing %d of %d sold listings\n\n", len(resp.Listings), resp.Total)
			return printSoldListingsTable(resp.Listings)
		},
	}

	cmd.Flags().StringVar(&categoryID, "category", "", "eBay category ID filter")
	cmd.Flags().IntVar(&limit, "limit", 10, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}
