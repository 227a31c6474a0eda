package rebalance

import "time"

// AllocationReport represents a detailed view of the portfolio's current
// allocation against its targets.
type AllocationReport struct {
	Time       time.Time // Generation time
	Currency   string
	Tolerance  Weight
	TotalValue Money
	Rows       []AllocationRow
}

// AllocationRow represents the allocation of a single held asset.
type AllocationRow struct {
	Ticker      string
	Quantity    Quantity
	Price       Money
	MarketValue Money
	Weight      Weight
	Target      Weight // zero when the asset has no target entry
	Targeted    bool
	Drift       Weight // signed Weight − Target, zero when untargeted
}

// NewAllocationReport computes the current allocation of every held asset,
// one row per ticker in lexical order. It fails with ErrInvalidState when
// the portfolio's total value is not positive.
func (p *Portfolio) NewAllocationReport() (*AllocationReport, error) {
	allocation, err := p.CurrentAllocation()
	if err != nil {
		return nil, err
	}

	total := p.TotalValue()
	report := &AllocationReport{
		Time:       time.Now(),
		Currency:   total.Currency(),
		Tolerance:  p.Tolerance(),
		TotalValue: total,
	}
	for _, ticker := range p.Tickers() {
		h, _ := p.Holding(ticker)
		row := AllocationRow{
			Ticker:      ticker,
			Quantity:    h.Quantity(),
			Price:       h.Asset().Price(),
			MarketValue: h.MarketValue(),
			Weight:      allocation[ticker],
		}
		if target, ok := p.Targets().Get(ticker); ok {
			row.Target = target
			row.Targeted = true
			row.Drift = row.Weight.Sub(target)
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}
