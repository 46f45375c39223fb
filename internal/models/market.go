package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is a single instrument quote from the backend price feed.
// Price is nil when the backend returned no usable price.
type Quote struct {
	Symbol    string           `json:"symbol"`
	Price     *decimal.Decimal `json:"price"`
	Open      decimal.Decimal  `json:"o"`
	High      decimal.Decimal  `json:"h"`
	Low       decimal.Decimal  `json:"l"`
	PrevClose decimal.Decimal  `json:"pc"`
	Change    decimal.Decimal  `json:"d"`
	ChangePct float64          `json:"dp"`
}

// PricePoint is one symbol's entry in a poll-cycle snapshot. A symbol
// whose fetch failed in a cycle reports Available=false for that cycle,
// not its last known value.
type PricePoint struct {
	Symbol    string
	Price     decimal.Decimal
	Available bool
}

// Snapshot is the complete per-cycle replacement of polled price data,
// keyed by symbol. Snapshots are never partially merged across cycles.
type Snapshot struct {
	Prices map[string]PricePoint
	At     time.Time
}

// SearchResult is one instrument returned by symbol search.
type SearchResult struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Type   string `json:"type"`
}

// PopularStock is one entry of the curated popular-instruments list.
type PopularStock struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Change    decimal.Decimal `json:"change"`
	ChangePct float64         `json:"changePercent"`
}
