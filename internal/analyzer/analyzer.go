package analyzer

import (
	"fmt"
	"log"
	"math"

	"SignalScout/internal/collector"
	"SignalScout/internal/indicator"
	"SignalScout/internal/model"
	"SignalScout/internal/sentiment"
	"SignalScout/internal/strategy"
)

// historyDays covers the trailing year plus slack for non-trading days.
const historyDays = 365

const takeProfitMultiplier = 1.3

// Analyzer orchestrates one scoring request: fetch bars and sentiment, run
// the indicator engine and scorer, derive risk levels.
type Analyzer struct {
	Fetcher   collector.Fetcher
	Sentiment sentiment.Provider
}

// New creates an Analyzer.
func New(fetcher collector.Fetcher, provider sentiment.Provider) *Analyzer {
	return &Analyzer{Fetcher: fetcher, Sentiment: provider}
}

// Analyze scores one ticker from its trailing-year daily history.
func (a *Analyzer) Analyze(ticker string) (*model.Analysis, error) {
	bars, err := a.Fetcher.FetchDailyBars(ticker, historyDays)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%s: %w", ticker, model.ErrNoData)
	}
	if len(bars) < 2 {
		return nil, fmt.Errorf("%s: %w", ticker, model.ErrInsufficientHistory)
	}
	if err := bars.Validate(); err != nil {
		return nil, err
	}

	frame, err := indicator.Compute(bars)
	if err != nil {
		return nil, fmt.Errorf("compute indicators: %w", err)
	}

	score, err := a.Sentiment.Score(ticker)
	if err != nil {
		log.Printf("[WARN] sentiment (%s) failed for %s, defaulting to 0: %v", a.Sentiment.Name(), ticker, err)
		score = 0
	}
	score = clamp(score, -1, 1)

	result, err := strategy.Score(bars, frame, score)
	if err != nil {
		return nil, fmt.Errorf("score: %w", err)
	}

	latest := bars.Latest()
	analysis := &model.Analysis{
		Ticker:         ticker,
		Score:          round2(result.Score),
		Classification: strategy.Classify(result.Score),
		Signals:        result.Signals,
		EntryPrice:     latest.Close,
		TakeProfit:     round2(latest.Close * takeProfitMultiplier),
	}
	if atr, ok := frame.ATR.At(len(bars) - 1); ok {
		analysis.StopLoss = round2(latest.Close - 2*atr)
	}
	return analysis, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
