// Package cmd implements the CLI application to compute rebalancing plans.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/dmarrero/rebalance"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&allocationCmd{},
	&rebalanceCmd{},
	&promptCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var snapshotFile = flag.String("portfolio-file", "portfolio.json", "Path to the portfolio snapshot file (JSON format)")

// decodePortfolio loads the portfolio snapshot from the app default file.
func decodePortfolio() (*rebalance.Portfolio, error) {
	f, err := os.Open(*snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", *snapshotFile, err)
	}
	defer f.Close()

	p, err := rebalance.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", *snapshotFile, err)
	}
	return p, nil
}

// warnTargetSum prints a warning when the target weights do not sum to 1.0.
// The core deliberately does not enforce that sum.
func warnTargetSum(p *rebalance.Portfolio) {
	if sum := p.Targets().Sum(); !sum.Equal(rebalance.W(1)) {
		fmt.Fprintf(os.Stderr, "Warning: target weights sum to %s, not 100%%\n", sum)
	}
}

// printMarkdown renders a markdown document for the terminal, falling back
// to the raw markdown when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
