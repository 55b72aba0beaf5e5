package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAnalysesTable(analyses []domain.Analysis) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tITEM\tBRAND\tMARKET\tDEMAND\tTREND\tCREATED\n")
	for i := range analyses {
		a := &analyses[i]
		tw.writef("%s\t%s\t%s\t$%.2f\t%s\t%s\t%s\n",
			a.ID,
			truncate(a.Identification.Name, 40),
			a.Identification.Brand,
			a.Ladder.Market,
			a.Market.Demand.Label(),
			a.Market.Trend.Label(),
			a.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	return tw.finish()
}

func printAnalysisDetail(a *domain.Analysis) error {
	tw := newTabWriter(os.Stdout)

	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Item:\t%s\n", a.Identification.Name)
	tw.writef("Brand:\t%s\n", a.Identification.Brand)
	if a.Identification.Category != "" {
		tw.writef("Category:\t%s\n", a.Identification.Category)
	}
	if a.Identification.StyleCode != "" {
		tw.writef("Style Code:\t%s\n", a.Identification.StyleCode)
	}
	if a.Identification.Size != "" {
		tw.writef("Size:\t%s\n", a.Identification.Size)
	}
	tw.writef("ID Confidence:\t%.0f%%\n", a.Identification.Confidence*100)
	tw.writef("\n")

	tw.writef("Demand:\t%s\n", a.Market.Demand.Label())
	tw.writef("Trend:\t%s\n", a.Market.Trend.Label())
	tw.writef("Recent Sales:\t%d (of %d total)\n", a.Market.RecentSales, a.Market.TotalSales)
	tw.writef("Competitors:\t%d\n", a.Market.CompetitorCount)
	tw.writef("Est. Sale:\t%d days\n", a.Market.EstSaleDays)
	tw.writef("\n")

	if a.Ladder.SampleSize == 0 {
		tw.writef("Pricing:\theuristic (no market data)\n")
	} else {
		tw.writef("Pricing:\t%d sold comparables\n", a.Ladder.SampleSize)
	}
	tw.writef("Quick Sale:\t$%.2f\n", a.Ladder.QuickSale)
	tw.writef("Market:\t$%.2f\n", a.Ladder.Market)
	tw.writef("Premium:\t$%.2f\n", a.Ladder.Premium)
	tw.writef("After Fees:\t$%.2f\n", a.Ladder.FeeAdjustedMarket)
	tw.writef("\n")

	tw.writef("Condition:\t%s (price impact %.0f%%)\n",
		a.Condition.Grade.Label(), a.Condition.PriceImpact*100)
	for _, note := range a.Condition.Notes {
		tw.writef("\t- %s\n", note)
	}
	tw.writef("\n")

	tw.writef("Format:\t%s\n", strings.ReplaceAll(string(a.Strategy.Format), "_", " "))
	tw.writef("Pricing Advice:\t%s\n", a.Strategy.Pricing)
	tw.writef("Timing:\t%s\n", a.Strategy.Timing)
	tw.writef("\n")

	tw.writef("Suggested Title:\t%s\n", a.Content.Title)

	return tw.finish()
}

func printSoldListingsTable(listings []domain.SoldListing) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("TITLE\tPRICE\tCONDITION\tSOLD\n")
	for i := range listings {
		l := &listings[i]
		soldAt := "-"
		if l.SoldAt != nil {
			soldAt = l.SoldAt.Format("2006-01-02")
		}
		tw.writef("%s\t$%.2f\t%s\t%s\n",
			truncate(l.Title, 50),
			l.TotalPrice(),
			l.ConditionRaw,
			soldAt,
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
