package rebalance

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// position is a helper for tests to create a holding from consts.
func position(ticker string, price, quantity float64) Holding {
	asset, err := NewAsset(ticker, USD(price))
	if err != nil {
		panic(err)
	}
	return NewHolding(asset, Q(quantity))
}

// targets is a helper for tests to create a target allocation from
// (ticker, weight) pairs, panicking on invalid input.
func targets(entries ...TargetWeight) Targets {
	t, err := NewTargets(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func tw(ticker string, weight float64) TargetWeight {
	return TargetWeight{Ticker: ticker, Weight: W(weight)}
}
