package model

import (
	"fmt"
	"time"
)

// Bar represents a single daily OHLCV candlestick.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// BarSeries holds daily bars for one ticker in ascending date order.
type BarSeries []Bar

// Closes extracts the close prices of the series.
func (s BarSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs extracts the high prices of the series.
func (s BarSeries) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows extracts the low prices of the series.
func (s BarSeries) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes extracts the traded volumes of the series.
func (s BarSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Volume
	}
	return out
}

// Latest returns the most recent bar. The series must not be empty.
func (s BarSeries) Latest() Bar { return s[len(s)-1] }

// Prev returns the second most recent bar. The series must have at least two bars.
func (s BarSeries) Prev() Bar { return s[len(s)-2] }

// Validate checks the OHLC invariants of every bar and the date ordering
// of the series. The first violation is returned wrapped in ErrMalformedBar.
func (s BarSeries) Validate() error {
	for i, b := range s {
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return fmt.Errorf("%w: bar %s has non-positive price", ErrMalformedBar, b.Date.Format("2006-01-02"))
		}
		if b.Volume < 0 {
			return fmt.Errorf("%w: bar %s has negative volume", ErrMalformedBar, b.Date.Format("2006-01-02"))
		}
		if b.High < b.Open || b.High < b.Close || b.High < b.Low {
			return fmt.Errorf("%w: bar %s high below open/close/low", ErrMalformedBar, b.Date.Format("2006-01-02"))
		}
		if b.Low > b.Open || b.Low > b.Close {
			return fmt.Errorf("%w: bar %s low above open/close", ErrMalformedBar, b.Date.Format("2006-01-02"))
		}
		if i > 0 && !s[i-1].Date.Before(b.Date) {
			return fmt.Errorf("%w: bar %s out of order or duplicated", ErrMalformedBar, b.Date.Format("2006-01-02"))
		}
	}
	return nil
}
