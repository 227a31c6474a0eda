package rebalance

// Holding is a position in a single asset: the quantity of it currently
// held. Separating Asset from Holding keeps the asset's identity apart from
// the investment decision.
type Holding struct {
	asset    Asset
	quantity Quantity
}

// NewHolding returns a holding of the given quantity of an asset.
// The quantity's sign is unconstrained; by convention it is non-negative.
func NewHolding(asset Asset, quantity Quantity) Holding {
	return Holding{asset: asset, quantity: quantity}
}

// Asset returns the held asset.
func (h Holding) Asset() Asset { return h.asset }

// Quantity returns the number of units held.
func (h Holding) Quantity() Quantity { return h.quantity }

// MarketValue returns quantity × price in the price's currency.
func (h Holding) MarketValue() Money {
	return h.asset.Price().Mul(h.quantity)
}
