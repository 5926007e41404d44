package indicator

import (
	"time"

	"github.com/markcheno/go-talib"

	"SignalScout/internal/model"
)

// Fixed parameterization for every derived series.
const (
	rsiPeriod        = 14
	stochFastK       = 14
	stochSlowK       = 3
	stochSlowD       = 3
	macdFast         = 12
	macdSlow         = 26
	macdSig          = 9
	bbPeriod         = 20
	adxPeriod        = 14
	atrPeriod        = 14
	mfiPeriod        = 14
	avgVolumePeriod  = 20
	low52Window      = 252
	conversionWindow = 9
	baseWindow       = 26
	spanBWindow      = 52
	cloudShift       = 26
)

// Frame holds all derived indicator series, aligned 1:1 with the source bars.
type Frame struct {
	RSI          Series
	SlowK, SlowD Series

	MACD, MACDSignal, MACDHist Series
	EMA9, EMA20, SMA50         Series

	BBUpper, BBMiddle, BBLower Series
	ATR                        Series

	OBV       Series
	AvgVolume Series
	MFI       Series

	ADX       Series
	Low52Week Series

	Conversion, Base Series
	SpanA, SpanB     Series

	SuperTrend Series

	// WeeklySMA is the mean close of the most recent calendar week,
	// a single scalar broadcast across the frame.
	WeeklySMA float64
}

// Compute derives the full indicator frame from a bar series. The input is
// never mutated. Series whose look-back exceeds the available history come
// back fully undefined rather than zero-filled.
func Compute(bars model.BarSeries) (*Frame, error) {
	if len(bars) < 2 {
		return nil, model.ErrInsufficientHistory
	}

	n := len(bars)
	highs := bars.Highs()
	lows := bars.Lows()
	closes := bars.Closes()
	volumes := bars.Volumes()

	f := &Frame{}

	f.RSI = guarded(n, rsiPeriod, func() []float64 { return talib.Rsi(closes, rsiPeriod) })

	// Both stochastic outputs share TA-Lib's combined look-back.
	stochLookback := (stochFastK - 1) + (stochSlowK - 1) + (stochSlowD - 1)
	if n > stochLookback {
		slowK, slowD := talib.Stoch(highs, lows, closes, stochFastK, stochSlowK, talib.SMA, stochSlowD, talib.SMA)
		f.SlowK = NewSeries(slowK, stochLookback)
		f.SlowD = NewSeries(slowD, stochLookback)
	} else {
		f.SlowK = undefined(n)
		f.SlowD = undefined(n)
	}

	macdLookback := (macdSlow - 1) + (macdSig - 1)
	if n > macdLookback {
		macd, signal, hist := talib.Macd(closes, macdFast, macdSlow, macdSig)
		f.MACD = NewSeries(macd, macdLookback)
		f.MACDSignal = NewSeries(signal, macdLookback)
		f.MACDHist = NewSeries(hist, macdLookback)
	} else {
		f.MACD = undefined(n)
		f.MACDSignal = undefined(n)
		f.MACDHist = undefined(n)
	}

	f.EMA9 = guarded(n, 8, func() []float64 { return talib.Ema(closes, 9) })
	f.EMA20 = guarded(n, 19, func() []float64 { return talib.Ema(closes, 20) })
	f.SMA50 = guarded(n, 49, func() []float64 { return talib.Sma(closes, 50) })

	if n > bbPeriod-1 {
		upper, middle, lower := talib.BBands(closes, bbPeriod, 2.0, 2.0, talib.SMA)
		f.BBUpper = NewSeries(upper, bbPeriod-1)
		f.BBMiddle = NewSeries(middle, bbPeriod-1)
		f.BBLower = NewSeries(lower, bbPeriod-1)
	} else {
		f.BBUpper = undefined(n)
		f.BBMiddle = undefined(n)
		f.BBLower = undefined(n)
	}

	f.OBV = NewSeries(talib.Obv(closes, volumes), 0)
	f.ADX = guarded(n, 2*adxPeriod-1, func() []float64 { return talib.Adx(highs, lows, closes, adxPeriod) })
	f.ATR = guarded(n, atrPeriod, func() []float64 { return talib.Atr(highs, lows, closes, atrPeriod) })
	f.MFI = guarded(n, mfiPeriod, func() []float64 { return talib.Mfi(highs, lows, closes, volumes, mfiPeriod) })
	f.AvgVolume = guarded(n, avgVolumePeriod-1, func() []float64 { return talib.Sma(volumes, avgVolumePeriod) })

	f.Low52Week = NewSeries(runningMin(lows, low52Window), 0)

	f.Conversion = midRange(highs, lows, conversionWindow)
	f.Base = midRange(highs, lows, baseWindow)
	f.SpanA = shift(average(f.Conversion, f.Base), cloudShift)
	f.SpanB = shift(midRange(highs, lows, spanBWindow), cloudShift)

	f.SuperTrend = computeSuperTrend(bars)
	f.WeeklySMA = weeklyCloseMean(bars)

	return f, nil
}

// guarded wraps a go-talib call that panics when the input is shorter than
// its look-back window.
func guarded(n, lookback int, fn func() []float64) Series {
	if n <= lookback {
		return undefined(n)
	}
	return NewSeries(fn(), lookback)
}

func undefined(n int) Series {
	return NewSeries(make([]float64, n), n)
}

// runningMin computes the trailing minimum over at most window bars, using
// all available history for the early indices.
func runningMin(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		m := values[start]
		for j := start + 1; j <= i; j++ {
			if values[j] < m {
				m = values[j]
			}
		}
		out[i] = m
	}
	return out
}

// midRange computes (rolling max high + rolling min low) / 2, the Ichimoku
// line construction.
func midRange(highs, lows []float64, window int) Series {
	out := make([]float64, len(highs))
	for i := window - 1; i < len(highs); i++ {
		hi := highs[i-window+1]
		lo := lows[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if highs[j] > hi {
				hi = highs[j]
			}
			if lows[j] < lo {
				lo = lows[j]
			}
		}
		out[i] = (hi + lo) / 2
	}
	return NewSeries(out, window-1)
}

// average returns the element-wise mean of two series, defined where both are.
func average(a, b Series) Series {
	n := a.Len()
	out := make([]float64, n)
	first := n
	for i := 0; i < n; i++ {
		va, oka := a.At(i)
		vb, okb := b.At(i)
		if !oka || !okb {
			continue
		}
		if first == n {
			first = i
		}
		out[i] = (va + vb) / 2
	}
	return NewSeries(out, first)
}

// shift moves a series forward by k bars, the Ichimoku cloud displacement.
func shift(s Series, k int) Series {
	n := s.Len()
	out := make([]float64, n)
	first := n
	for i := k; i < n; i++ {
		v, ok := s.At(i - k)
		if !ok {
			continue
		}
		if first == n {
			first = i
		}
		out[i] = v
	}
	return NewSeries(out, first)
}

// weeklyCloseMean resamples daily closes into calendar weeks ending Sunday
// and returns the mean close of the most recent, possibly partial, week.
func weeklyCloseMean(bars model.BarSeries) float64 {
	var sum float64
	var count int
	var current time.Time
	for _, b := range bars {
		we := weekEnd(b.Date)
		if count == 0 || !we.Equal(current) {
			current = we
			sum = 0
			count = 0
		}
		sum += b.Close
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// weekEnd returns the Sunday on or after t, truncated to a date.
func weekEnd(t time.Time) time.Time {
	days := (7 - int(t.Weekday())) % 7
	y, m, d := t.AddDate(0, 0, days).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
