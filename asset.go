package rebalance

import "fmt"

// Asset identifies a single tradable asset and its current price.
//
// Asset is an immutable value: identity and price are fixed at construction,
// and a price change means constructing a new Asset. Two assets compare
// equal when ticker and price match.
type Asset struct {
	ticker string
	price  Money
}

// NewAsset returns an asset for the given ticker at the given price.
// The ticker must not be empty. The price is taken as-is: a zero or negative
// price is accepted numerically and only rejected later, when a trade
// quantity must be derived from it.
func NewAsset(ticker string, price Money) (Asset, error) {
	if ticker == "" {
		return Asset{}, fmt.Errorf("asset ticker is missing")
	}
	return Asset{ticker: ticker, price: price}, nil
}

// Ticker returns the asset's identifier, unique within a portfolio.
func (a Asset) Ticker() string { return a.ticker }

// Price returns the asset's current price. It is the seam where a pluggable
// pricing source (API, cache, mock) would be wired in.
func (a Asset) Price() Money { return a.price }
