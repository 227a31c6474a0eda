package rebalance

import "fmt"

// Side is the direction of a recommended trade.
type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Action is one recommended trade. It communicates a decision, it executes
// nothing; that separation is what keeps the computation auditable.
// Quantity and Value are absolute, the direction is carried by Side.
type Action struct {
	Asset    Asset
	Side     Side
	Quantity Quantity
	Value    Money
}

// MarshalJSON implements the json.Marshaler interface with a stable field
// order.
func (a Action) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("side", string(a.Side))
	w.Append("ticker", a.Asset.Ticker())
	w.Append("quantity", a.Quantity)
	w.Append("value", a.Value)
	return w.MarshalJSON()
}

// Rebalance decides which positions have drifted outside their tolerance
// band and how to bring them back. It returns one action per out-of-band
// target entry, in target declaration order.
//
// The central policy is the no-trade zone: while a position's current weight
// stays within [target−tolerance, target+tolerance], inclusive on both ends,
// nothing is emitted for it. Small drift is tolerated to let winners run and
// to avoid transaction churn. Once the band is breached, the trade targets
// the center of the band — one canonical target value regardless of which
// side was breached.
//
// Target tickers that are not currently held are skipped: the portfolio only
// rebalances existing positions, opening new ones is out of scope.
//
// The computation is a pure pass over the target entries. It fails as a
// whole with ErrInvalidState when the portfolio's total value is not
// positive, and with ErrInvalidPrice when an out-of-band asset has a zero
// price, since no trade quantity can be derived then.
func (p *Portfolio) Rebalance() ([]Action, error) {
	totalValue := p.TotalValue()
	allocation, err := p.CurrentAllocation()
	if err != nil {
		return nil, err
	}

	var actions []Action
	for _, target := range p.targets {
		holding, held := p.holdings[target.Ticker]
		if !held {
			continue
		}

		// The allocation is derived from the holdings, so a held ticker is
		// always present; the zero Weight keeps a missing key harmless.
		current := allocation[target.Ticker]

		lower := target.Weight.Sub(p.tol)
		upper := target.Weight.Add(p.tol)
		if !current.LessThan(lower) && !current.GreaterThan(upper) {
			continue
		}

		targetValue := target.Weight.Of(totalValue)
		deltaValue := targetValue.Sub(holding.MarketValue())

		price := holding.Asset().Price()
		if price.IsZero() {
			return nil, fmt.Errorf("cannot size a trade for %q: %w", target.Ticker, ErrInvalidPrice)
		}
		quantityDelta := deltaValue.DivPrice(price)

		// Strictly positive buys, anything else sells. An exactly zero
		// delta therefore classifies as a SELL of quantity 0.
		side := Sell
		if quantityDelta.IsPositive() {
			side = Buy
		}

		actions = append(actions, Action{
			Asset:    holding.Asset(),
			Side:     side,
			Quantity: quantityDelta.Abs(),
			Value:    deltaValue.Abs(),
		})
	}
	return actions, nil
}
