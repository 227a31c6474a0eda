package rebalance

import (
	"errors"
	"testing"
)

// balanced portfolio: both weights at exactly 0.5, inside the ±5% band.
func TestRebalance_WithinBand(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 10), position("BND", 100, 10)},
		targets(tw("AAPL", 0.5), tw("BND", 0.5)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("Rebalance() = %v, want no actions", actions)
	}
}

// drifted portfolio: AAPL at 90%, BND at 10%, both far outside the band.
func TestRebalance_Drifted(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 18), position("BND", 100, 2)},
		targets(tw("AAPL", 0.5), tw("BND", 0.5)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("len(actions) = %d, want 2", len(actions))
	}

	// Output order follows the target declaration order.
	sell := actions[0]
	if sell.Asset.Ticker() != "AAPL" || sell.Side != Sell {
		t.Errorf("actions[0] = %s %s, want SELL AAPL", sell.Side, sell.Asset.Ticker())
	}
	if !sell.Quantity.Equal(Q(8)) {
		t.Errorf("SELL quantity = %v, want 8", sell.Quantity)
	}
	if !sell.Value.Equal(USD(800)) {
		t.Errorf("SELL value = %v, want %v", sell.Value, USD(800))
	}

	buy := actions[1]
	if buy.Asset.Ticker() != "BND" || buy.Side != Buy {
		t.Errorf("actions[1] = %s %s, want BUY BND", buy.Side, buy.Asset.Ticker())
	}
	if !buy.Quantity.Equal(Q(8)) {
		t.Errorf("BUY quantity = %v, want 8", buy.Quantity)
	}
	if !buy.Value.Equal(USD(800)) {
		t.Errorf("BUY value = %v, want %v", buy.Value, USD(800))
	}
}

// Every action re-centers its position on exactly totalValue × targetWeight.
func TestRebalance_CentersOnTarget(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 18), position("BND", 25, 8)},
		targets(tw("AAPL", 0.6), tw("BND", 0.4)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	total := p.TotalValue()
	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) == 0 {
		t.Fatal("Rebalance() returned no actions for a drifted portfolio")
	}

	for _, a := range actions {
		h, _ := p.Holding(a.Asset.Ticker())
		after := h.MarketValue()
		switch a.Side {
		case Buy:
			after = after.Add(a.Value)
		case Sell:
			after = after.Sub(a.Value)
		}
		target, _ := p.Targets().Get(a.Asset.Ticker())
		if want := target.Of(total); !after.Equal(want) {
			t.Errorf("%s after applying action = %v, want %v", a.Asset.Ticker(), after, want)
		}
	}
}

// A weight sitting exactly on a band edge triggers no action: the band is
// inclusive on both ends.
func TestRebalance_InclusiveBandEdges(t *testing.T) {
	// AAPL at 0.55 = target + tolerance, BND at 0.45 = target − tolerance.
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 11), position("BND", 100, 9)},
		targets(tw("AAPL", 0.5), tw("BND", 0.5)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("Rebalance() = %v, want no actions on the band edges", actions)
	}
}

// Target tickers that are not held are skipped, never traded.
func TestRebalance_SkipsUnheldTargets(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 18), position("BND", 100, 2)},
		targets(tw("AAPL", 0.4), tw("GLD", 0.2), tw("BND", 0.4)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	for _, a := range actions {
		if a.Asset.Ticker() == "GLD" {
			t.Errorf("Rebalance() emitted an action for unheld ticker GLD: %v", a)
		}
	}
	if len(actions) != 2 {
		t.Errorf("len(actions) = %d, want 2", len(actions))
	}
}

// An out-of-band position with a zero price cannot be sized.
func TestRebalance_ZeroPrice(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 10), position("JUNK", 0, 5)},
		targets(tw("AAPL", 0.5), tw("JUNK", 0.5)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	if _, err := p.Rebalance(); !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("Rebalance() error = %v, want ErrInvalidPrice", err)
	}
}

// A zero-price holding inside its band is left alone: the price guard only
// applies when a trade must actually be sized.
func TestRebalance_ZeroPriceWithinBand(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 10), position("JUNK", 0, 5)},
		targets(tw("AAPL", 1), tw("JUNK", 0.02)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("Rebalance() = %v, want no actions", actions)
	}
}

// BUY strictly when the target value exceeds the market value, SELL
// otherwise.
func TestRebalance_SideConsistency(t *testing.T) {
	p, err := NewPortfolio(
		[]Holding{position("AAPL", 100, 18), position("BND", 100, 2)},
		targets(tw("AAPL", 0.5), tw("BND", 0.5)),
		W(0.05),
	)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}

	total := p.TotalValue()
	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	for _, a := range actions {
		h, _ := p.Holding(a.Asset.Ticker())
		target, _ := p.Targets().Get(a.Asset.Ticker())
		want := Sell
		if target.Of(total).GreaterThan(h.MarketValue()) {
			want = Buy
		}
		if a.Side != want {
			t.Errorf("%s side = %s, want %s", a.Asset.Ticker(), a.Side, want)
		}
	}
}

// The output order is the target declaration order, deterministically.
func TestRebalance_OrderFollowsTargets(t *testing.T) {
	holdings := []Holding{position("AAPL", 100, 18), position("BND", 100, 2)}

	p, err := NewPortfolio(holdings, targets(tw("BND", 0.5), tw("AAPL", 0.5)), W(0.05))
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	actions, err := p.Rebalance()
	if err != nil {
		t.Fatalf("Rebalance() error = %v", err)
	}
	if len(actions) != 2 {
		t.Fatalf("len(actions) = %d, want 2", len(actions))
	}
	if actions[0].Asset.Ticker() != "BND" || actions[1].Asset.Ticker() != "AAPL" {
		t.Errorf("action order = [%s %s], want [BND AAPL]",
			actions[0].Asset.Ticker(), actions[1].Asset.Ticker())
	}
}
