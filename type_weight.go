package rebalance

import "github.com/shopspring/decimal"

// Weight is a fraction of the total portfolio value, so that 0.5 is half of
// the portfolio. Target allocations, tolerance bands and current allocations
// are all weights.
type Weight struct {
	value decimal.Decimal
}

func W[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Weight {
	return Weight{value: newDecimal(value)}
}

func (w Weight) Equal(x Weight) bool       { return w.value.Equal(x.value) }
func (w Weight) LessThan(x Weight) bool    { return w.value.LessThan(x.value) }
func (w Weight) GreaterThan(x Weight) bool { return w.value.GreaterThan(x.value) }
func (w Weight) Add(x Weight) Weight       { return Weight{value: w.value.Add(x.value)} }
func (w Weight) Sub(x Weight) Weight       { return Weight{value: w.value.Sub(x.value)} }
func (w Weight) IsNegative() bool          { return w.value.IsNegative() }
func (w Weight) IsZero() bool              { return w.value.IsZero() }

// Of returns the given share of a total value, in the total's currency.
func (w Weight) Of(total Money) Money {
	return Money{value: total.value.Mul(w.value), cur: total.cur}
}

// String renders the weight as a percentage, e.g. "50.00%".
func (w Weight) String() string {
	return w.value.Shift(2).StringFixed(2) + "%"
}

// SignedString renders the weight as a signed percentage.
// 0 is represented as a "-"
func (w Weight) SignedString() string {
	if w.value.IsZero() {
		return "-"
	}
	if w.value.IsPositive() {
		return "+" + w.String()
	}
	return w.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (w Weight) MarshalJSON() ([]byte, error) {
	return w.value.MarshalJSON()
}
func (w *Weight) UnmarshalJSON(decimalBytes []byte) error {
	return w.value.UnmarshalJSON(decimalBytes)
}
