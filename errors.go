package rebalance

import "errors"

// The computation fails in exactly two ways, both precondition violations.
// They are surfaced as explicit guard clauses wrapping these sentinels, so
// callers can distinguish them with errors.Is instead of recovering from a
// division panic.
var (
	// ErrInvalidState reports a portfolio whose total value is zero or
	// negative at the point an allocation or a rebalance is requested.
	ErrInvalidState = errors.New("portfolio total value is not positive")

	// ErrInvalidPrice reports an asset with a zero price when a trade
	// quantity must be derived for it.
	ErrInvalidPrice = errors.New("asset price is zero")
)
