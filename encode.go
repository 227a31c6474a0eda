package rebalance

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// This file contains code to read and write the portfolio snapshot document,
// the single JSON object the command line tool consumes:
//
//	{
//	  "currency": "USD",
//	  "tolerance": 0.05,
//	  "holdings": [{"ticker": "AAPL", "price": 100, "quantity": 10}],
//	  "targets":  [{"ticker": "AAPL", "weight": 0.5}]
//	}
//
// The targets array is ordered and its order is preserved: it drives the
// order of the rebalance output. This is input tooling, not persistence of
// portfolio state: the core never writes a snapshot on its own behalf.

// to parse a json, we use dedicated local structs with tag annotations.

type jholding struct {
	Ticker   string          `json:"ticker"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

type jtarget struct {
	Ticker string          `json:"ticker"`
	Weight decimal.Decimal `json:"weight"`
}

type jsnapshot struct {
	Currency  string          `json:"currency"`
	Tolerance decimal.Decimal `json:"tolerance"`
	Holdings  []jholding      `json:"holdings"`
	Targets   []jtarget       `json:"targets"`
}

// DecodeSnapshot reads a portfolio snapshot document and builds the
// portfolio it describes. Construction rules apply: duplicate tickers,
// missing tickers and a negative tolerance are rejected.
func DecodeSnapshot(r io.Reader) (*Portfolio, error) {
	var js jsnapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&js); err != nil {
		return nil, fmt.Errorf("format error in snapshot: %w", err)
	}

	holdings := make([]Holding, 0, len(js.Holdings))
	for _, jh := range js.Holdings {
		asset, err := NewAsset(jh.Ticker, M(jh.Price, js.Currency))
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot holding: %w", err)
		}
		holdings = append(holdings, NewHolding(asset, Q(jh.Quantity)))
	}

	entries := make([]TargetWeight, 0, len(js.Targets))
	for _, jt := range js.Targets {
		entries = append(entries, TargetWeight{Ticker: jt.Ticker, Weight: W(jt.Weight)})
	}
	targets, err := NewTargets(entries...)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot targets: %w", err)
	}

	p, err := NewPortfolio(holdings, targets, W(js.Tolerance))
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}
	return p, nil
}

// EncodeSnapshot writes the portfolio as a snapshot document in canonical
// form: holdings sorted by ticker, targets in declaration order.
func EncodeSnapshot(w io.Writer, p *Portfolio) error {
	js := jsnapshot{
		Currency:  p.TotalValue().Currency(),
		Tolerance: p.Tolerance().value,
		Holdings:  make([]jholding, 0, len(p.holdings)),
		Targets:   make([]jtarget, 0, len(p.targets)),
	}
	for _, h := range p.Holdings() {
		js.Holdings = append(js.Holdings, jholding{
			Ticker:   h.Asset().Ticker(),
			Price:    h.Asset().Price().value,
			Quantity: h.Quantity().value,
		})
	}
	for _, t := range p.targets {
		js.Targets = append(js.Targets, jtarget{Ticker: t.Ticker, Weight: t.Weight.value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(js); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// EncodeActions writes each action as a JSON line, in JSONL format.
func EncodeActions(w io.Writer, actions []Action) error {
	for _, a := range actions {
		jsonData, err := json.Marshal(a)
		if err != nil {
			return fmt.Errorf("failed to marshal action for %q: %w", a.Asset.Ticker(), err)
		}
		if _, err := w.Write(append(jsonData, '\n')); err != nil {
			return fmt.Errorf("failed to write action: %w", err)
		}
	}
	return nil
}
