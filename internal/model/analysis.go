package model

import "errors"

// Error taxonomy for a scoring request. Anything else bubbles up wrapped.
var (
	// ErrNoData means the data source has no bars at all for the ticker.
	ErrNoData = errors.New("no data found for ticker")
	// ErrInsufficientHistory means fewer than two bars were available.
	ErrInsufficientHistory = errors.New("insufficient price history")
	// ErrMalformedBar means a bar violated the OHLC invariants.
	ErrMalformedBar = errors.New("malformed bar")
)

// Classification tiers, ordered from best to worst.
const (
	ClassStrongBuy   = "Strong Buy"
	ClassModerateBuy = "Moderate Buy"
	ClassNeutral     = "Neutral"
	ClassAvoidSell   = "Avoid/Sell"
)

// SignalEntry is one line of the score breakdown: a rule label plus either
// its fired-branch description or the insufficient-data sentinel.
type SignalEntry struct {
	Rule   string `json:"rule"`
	Detail string `json:"detail"`
}

// ScoreResult is the scorer output for one evaluation.
type ScoreResult struct {
	// Raw is the accumulated signed weight before normalization.
	Raw float64
	// Score is the normalized score: 100 when every positive branch fires,
	// unbounded below zero when negative branches dominate.
	Score float64
	// Signals lists fired and insufficient-data rules in catalog order.
	Signals []SignalEntry
}

// Analysis is the final response payload for one ticker.
type Analysis struct {
	Ticker         string        `json:"ticker"`
	Score          float64       `json:"score"`
	Classification string        `json:"classification"`
	Signals        []SignalEntry `json:"signals"`
	EntryPrice     float64       `json:"entry_price"`
	StopLoss       float64       `json:"stop_loss,omitempty"`
	TakeProfit     float64       `json:"take_profit"`
}
