package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/jmorrow/flip-analyzer/internal/api/client"
)

func analysesCmd() *cobra.Command {
	analysesRoot := &cobra.Command{
		Use:   "analyses",
		Short: "Query stored analyses",
		Long: "Query and inspect analyses that have been run and stored by the\n" +
			"flip-analyzer pipeline.",
	}

	analysesRoot.AddCommand(
		analysesListCmd(),
		analysesGetCmd(),
		analysesDeleteCmd(),
	)

	return analysesRoot
}

func analysesListCmd() *cobra.Command {
	var (
		brand    string
		category string
		demand   string
		minPrice float64
		maxPrice float64
		limit    int
		offset   int
		orderBy  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List analyses with optional filters",
		Example: `  # List all stored analyses
  flip-analyzer analyses list

  # Filter by brand and demand
  flip-analyzer analyses list --brand nike --demand high

  # Sort by market price with pagination
  flip-analyzer analyses list --order-by market_price --limit 20 --offset 40`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListAnalyses(context.Background(), &apiclient.ListAnalysesParams{
				Brand:    brand,
				Category: category,
				Demand:   demand,
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				Limit:    limit,
				Offset:   offset,
				OrderBy:  orderBy,
			})
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(resp)
			}

			if len(resp.Analyses) == 0 {
				fmt.Println("No analyses found.")
				return nil
			}

			fmt.Printf("Showing %d of %d analyses\n\n", len(resp.Analyses), resp.Total)
			return printAnalysesTable(resp.Analyses)
		},
	}

	cmd.Flags().StringVar(&brand, "brand", "", "brand filter")
	cmd.Flags().StringVar(&category, "category", "", "category filter")
	cmd.Flags().StringVar(&demand, "demand", "", "demand level filter")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "minimum market price")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "maximum market price")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (created_at, market_price, demand)")

	return cmd
}

func analysesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show analysis details",
		Example: `  flip-analyzer analyses get 6e1b0f1a-9c94-4d0e-8fd3-1c2a60d3b111`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			a, err := c.GetAnalysis(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(a)
			}

			return printAnalysisDetail(a)
		},
	}
}

func analysesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a stored analysis",
		Example: `  flip-analyzer analyses delete 6e1b0f1a-9c94-4d0e-8fd3-1c2a60d3b111`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteAnalysis(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Analysis deleted.")
			return nil
		},
	}
}
