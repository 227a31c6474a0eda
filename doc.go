// Package rebalance computes portfolio rebalancing recommendations. Given
// the current holdings, a target allocation per asset and a tolerance band,
// it decides which positions have drifted far enough from their target
// weight to warrant a trade, and by how much.
//
// The core functionalities include:
//   - Valuation: assets, holdings and their market values, with all
//     arithmetic carried out on exact decimals.
//   - Allocation: the current weight of every held asset relative to the
//     total portfolio value.
//   - Rebalancing: a pure, stateless decision pass over the target
//     allocation that emits recommended (never executed) buy and sell
//     actions back towards the allocation targets.
//   - Snapshot encoding: reading and writing the JSON document that
//     describes a portfolio to the command line tool.
//
// This package serves as the foundational logic for the `rbl` command-line
// tool. It performs no I/O of its own besides snapshot encoding, holds no
// locks, and never mutates the portfolio it computes on; callers embedding
// it in a concurrent host must not mutate a Portfolio during a call.
package rebalance
