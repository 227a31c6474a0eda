package rebalance

import (
	"fmt"
	"sort"
)

// Portfolio aggregates the current holdings, the target allocation and the
// tolerance band. It owns its holdings exclusively; the assets know nothing
// about the portfolio.
//
// A Portfolio is not safe for concurrent mutation: a caller embedding it in
// a concurrent host must guarantee the portfolio is not modified for the
// duration of a call.
type Portfolio struct {
	holdings map[string]Holding
	targets  Targets
	tol      Weight
}

// NewPortfolio builds a portfolio from the given holdings, target allocation
// and tolerance band.
//
// Two holdings of the same ticker are rejected rather than silently merged
// or overwritten. The tolerance must not be negative.
func NewPortfolio(holdings []Holding, targets Targets, tolerance Weight) (*Portfolio, error) {
	if tolerance.IsNegative() {
		return nil, fmt.Errorf("tolerance %s must not be negative", tolerance)
	}
	m := make(map[string]Holding, len(holdings))
	for _, h := range holdings {
		ticker := h.Asset().Ticker()
		if ticker == "" {
			return nil, fmt.Errorf("holding asset ticker is missing")
		}
		if _, dup := m[ticker]; dup {
			return nil, fmt.Errorf("ticker %q is held twice", ticker)
		}
		m[ticker] = h
	}
	return &Portfolio{holdings: m, targets: targets, tol: tolerance}, nil
}

// Tolerance returns the symmetric no-trade margin around each target weight.
func (p *Portfolio) Tolerance() Weight { return p.tol }

// Targets returns the target allocation in declaration order.
func (p *Portfolio) Targets() Targets { return p.targets }

// Holding returns the position held for a ticker, if any.
func (p *Portfolio) Holding(ticker string) (Holding, bool) {
	h, ok := p.holdings[ticker]
	return h, ok
}

// Holdings returns the held positions sorted by ticker.
func (p *Portfolio) Holdings() []Holding {
	tickers := p.Tickers()
	holdings := make([]Holding, 0, len(tickers))
	for _, t := range tickers {
		holdings = append(holdings, p.holdings[t])
	}
	return holdings
}

// Tickers returns the held tickers in lexical order.
func (p *Portfolio) Tickers() []string {
	tickers := make([]string, 0, len(p.holdings))
	for t := range p.holdings {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	return tickers
}

// TotalValue returns the sum of all holdings' market values.
// An empty portfolio is worth zero.
func (p *Portfolio) TotalValue() Money {
	var total Money
	for _, h := range p.holdings {
		total = total.Add(h.MarketValue())
	}
	return total
}

// CurrentAllocation returns the weight of every held asset relative to the
// portfolio's total value. It fails with ErrInvalidState when the total
// value is not strictly positive, since no weight is defined then.
func (p *Portfolio) CurrentAllocation() (map[string]Weight, error) {
	total := p.TotalValue()
	if !total.IsPositive() {
		return nil, fmt.Errorf("cannot compute allocation of %s worth: %w", total, ErrInvalidState)
	}
	allocation := make(map[string]Weight, len(p.holdings))
	for ticker, h := range p.holdings {
		allocation[ticker] = h.MarketValue().Ratio(total)
	}
	return allocation, nil
}
