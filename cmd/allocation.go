package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmarrero/rebalance/renderer"
	"github.com/google/subcommands"
)

// allocationCmd holds the flags for the 'allocation' subcommand.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the current allocation against the targets" }
func (*allocationCmd) Usage() string {
	return `rbl allocation

  Displays the total value, the current weight of every held asset, its
  target weight and the drift between the two.
`
}

func (c *allocationCmd) SetFlags(f *flag.FlagSet) {}

func (c *allocationCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := decodePortfolio()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	warnTargetSum(p)

	report, err := p.NewAllocationReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating allocation report: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AllocationMarkdown(report))
	return subcommands.ExitSuccess
}
