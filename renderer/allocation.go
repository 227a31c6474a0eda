// Package renderer renders portfolio reports as markdown documents,
// ready for a terminal markdown renderer or plain display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/dmarrero/rebalance"
)

// AllocationMarkdown renders the current allocation of every held asset
// against its target.
func AllocationMarkdown(r *rebalance.AllocationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Allocation on %s\n\n", r.Time.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Total value: **%s**, tolerance band: ±%s\n\n", r.TotalValue, r.Tolerance)

	fmt.Fprintln(&b, "| Ticker | Quantity | Price | Market Value | Weight | Target | Drift |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, row := range r.Rows {
		target := "-"
		if row.Targeted {
			target = row.Target.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			row.Ticker,
			row.Quantity,
			row.Price,
			row.MarketValue,
			row.Weight,
			target,
			row.Drift.SignedString(),
		)
	}
	return b.String()
}
