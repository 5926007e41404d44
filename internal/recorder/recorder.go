package recorder

import (
	"time"

	"SignalScout/internal/model"
)

// StoredAnalysis is one persisted analysis snapshot.
type StoredAnalysis struct {
	Timestamp      time.Time           `json:"timestamp"`
	Ticker         string              `json:"ticker"`
	Score          float64             `json:"score"`
	Classification string              `json:"classification"`
	EntryPrice     float64             `json:"entry_price"`
	StopLoss       float64             `json:"stop_loss"`
	TakeProfit     float64             `json:"take_profit"`
	Signals        []model.SignalEntry `json:"signals"`
}

// Recorder persists analysis snapshots for later inspection.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	RecentAnalyses(ticker string, limit int) ([]StoredAnalysis, error)
	Close() error
}
