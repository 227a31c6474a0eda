package rebalance

import "fmt"

// TargetWeight is the desired share of the total portfolio value for one
// asset.
type TargetWeight struct {
	Ticker string
	Weight Weight
}

// Targets is the target allocation: an ordered list of (ticker, weight)
// pairs. The declaration order is meaningful, it drives the order of the
// rebalance output. Weights are intended to sum to 1.0 across all entries;
// this is deliberately not enforced, use Sum to check.
type Targets []TargetWeight

// NewTargets builds a target allocation from the given entries, rejecting
// duplicate tickers.
func NewTargets(entries ...TargetWeight) (Targets, error) {
	targets := make(Targets, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.Ticker == "" {
			return nil, fmt.Errorf("target ticker is missing")
		}
		if _, dup := seen[e.Ticker]; dup {
			return nil, fmt.Errorf("target ticker %q is declared twice", e.Ticker)
		}
		seen[e.Ticker] = struct{}{}
		targets = append(targets, e)
	}
	return targets, nil
}

// Sum returns the total of all target weights. A well-formed allocation
// sums to 1.0; the caller decides what to do when it does not.
func (t Targets) Sum() Weight {
	var sum Weight
	for _, e := range t {
		sum = sum.Add(e.Weight)
	}
	return sum
}

// Get returns the target weight for a ticker, and whether the ticker is
// part of the allocation at all.
func (t Targets) Get(ticker string) (Weight, bool) {
	for _, e := range t {
		if e.Ticker == ticker {
			return e.Weight, true
		}
	}
	return Weight{}, false
}
