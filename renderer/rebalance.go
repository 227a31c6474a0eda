package renderer

import (
	"fmt"
	"strings"

	"github.com/dmarrero/rebalance"
)

// ActionString renders a single action as a one-line recommendation,
// e.g. "SELL 8 shares of AAPL (≈ $800.00)".
func ActionString(a rebalance.Action) string {
	return fmt.Sprintf("%s %s shares of %s (≈ %s)", a.Side, a.Quantity, a.Asset.Ticker(), a.Value)
}

// RebalanceMarkdown renders the recommended actions. The output presents
// recommendations, not orders: nothing here is executed.
func RebalanceMarkdown(actions []rebalance.Action) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalancing\n\n")

	if len(actions) == 0 {
		fmt.Fprintln(&b, "The portfolio is within its tolerance bands. No adjustments required.")
		return b.String()
	}

	fmt.Fprintln(&b, "Recommended actions:")
	fmt.Fprintln(&b)
	for _, a := range actions {
		fmt.Fprintf(&b, "- %s\n", ActionString(a))
	}
	return b.String()
}
