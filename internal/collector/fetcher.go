package collector

import "SignalScout/internal/model"

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchDailyBars(symbol string, days int) (model.BarSeries, error)
	Name() string
}
