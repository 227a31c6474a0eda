package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmarrero/rebalance"
	"github.com/dmarrero/rebalance/renderer"
	"github.com/google/subcommands"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	json bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "compute the recommended rebalancing actions" }
func (*rebalanceCmd) Usage() string {
	return `rbl rebalance [-json]

  Computes the trades that would bring each out-of-band position back to its
  target weight. Positions within the tolerance band are left alone, and
  target tickers that are not held are skipped. The actions are printed as
  recommendations; nothing is executed.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "emit the actions as JSON lines instead of a report")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := decodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	warnTargetSum(p)

	actions, err := p.Rebalance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing rebalance: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := rebalance.EncodeActions(os.Stdout, actions); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing actions: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RebalanceMarkdown(actions))
	return subcommands.ExitSuccess
}
