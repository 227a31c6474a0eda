package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmarrero/rebalance"
	"github.com/dmarrero/rebalance/renderer"
	"github.com/google/subcommands"
)

// promptCmd holds the flags for the 'prompt' subcommand.
type promptCmd struct {
	currency string
	out      string
}

func (*promptCmd) Name() string     { return "prompt" }
func (*promptCmd) Synopsis() string { return "interactively build a portfolio and rebalance it" }
func (*promptCmd) Usage() string {
	return `rbl prompt [-c <currency>] [-o <file>]

  Prompts for the current positions, the target allocation and the tolerance
  band, then displays the allocation and the recommended actions. With -o the
  portfolio snapshot is also written to a file for later 'allocation' and
  'rebalance' runs.
`
}

func (c *promptCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", "USD", "Currency for the prices")
	f.StringVar(&c.out, "o", "", "Write the portfolio snapshot to this file")
}

func (c *promptCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := c.buildPortfolio(newPrompter(os.Stdin, os.Stdout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.out != "" {
		if err := writeSnapshot(c.out, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Snapshot written to %s\n", c.out)
	}

	warnTargetSum(p)

	report, err := p.NewAllocationReport()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating allocation report: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AllocationMarkdown(report))

	actions, err := p.Rebalance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing rebalance: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RebalanceMarkdown(actions))

	return subcommands.ExitSuccess
}

// buildPortfolio collects positions, targets and tolerance from the prompter.
func (c *promptCmd) buildPortfolio(pr *prompter) (*rebalance.Portfolio, error) {
	n, err := pr.count("How many distinct assets does the portfolio hold? ")
	if err != nil {
		return nil, err
	}

	holdings := make([]rebalance.Holding, 0, n)
	for i := 0; i < n; i++ {
		ticker, err := pr.ticker("\nAsset ticker (e.g. AAPL): ")
		if err != nil {
			return nil, err
		}
		price, err := pr.float(fmt.Sprintf("Current price of %s: ", ticker))
		if err != nil {
			return nil, err
		}
		quantity, err := pr.float(fmt.Sprintf("Quantity of %s held: ", ticker))
		if err != nil {
			return nil, err
		}

		asset, err := rebalance.NewAsset(ticker, rebalance.M(price, c.currency))
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, rebalance.NewHolding(asset, rebalance.Q(quantity)))
	}

	n, err = pr.count("\nHow many allocation targets? ")
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(pr.out, "\nEnter weights as decimals (e.g. 0.4 for 40%)")

	entries := make([]rebalance.TargetWeight, 0, n)
	for i := 0; i < n; i++ {
		ticker, err := pr.ticker("Ticker: ")
		if err != nil {
			return nil, err
		}
		weight, err := pr.float(fmt.Sprintf("Target weight for %s: ", ticker))
		if err != nil {
			return nil, err
		}
		entries = append(entries, rebalance.TargetWeight{Ticker: ticker, Weight: rebalance.W(weight)})
	}
	targets, err := rebalance.NewTargets(entries...)
	if err != nil {
		return nil, err
	}

	tolerance, err := pr.float("\nTolerance band (e.g. 0.05 for ±5%): ")
	if err != nil {
		return nil, err
	}

	return rebalance.NewPortfolio(holdings, targets, rebalance.W(tolerance))
}

func writeSnapshot(filename string, p *rebalance.Portfolio) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create snapshot file %q: %w", filename, err)
	}
	defer f.Close()
	return rebalance.EncodeSnapshot(f, p)
}

// prompter centralizes reading values from the terminal: invalid input is
// reported and asked again instead of failing the command.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// line prints the message and reads one trimmed line. It fails only when
// the input is exhausted.
func (p *prompter) line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// float asks for a number until a valid one is entered.
func (p *prompter) float(msg string) (float64, error) {
	for {
		txt, err := p.line(msg)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(txt, 64)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return v, nil
	}
}

// count asks for a non-negative whole number until a valid one is entered.
func (p *prompter) count(msg string) (int, error) {
	for {
		txt, err := p.line(msg)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(txt)
		if err != nil || v < 0 {
			fmt.Fprintln(p.out, "Please enter a valid count.")
			continue
		}
		return v, nil
	}
}

// ticker asks for a non-empty ticker and uppercases it.
func (p *prompter) ticker(msg string) (string, error) {
	for {
		txt, err := p.line(msg)
		if err != nil {
			return "", err
		}
		if txt == "" {
			fmt.Fprintln(p.out, "Please enter a ticker.")
			continue
		}
		return strings.ToUpper(txt), nil
	}
}
