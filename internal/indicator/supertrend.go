package indicator

import (
	"github.com/markcheno/go-talib"

	"SignalScout/internal/model"
)

const (
	superTrendPeriod     = 10
	superTrendMultiplier = 3.0
)

// computeSuperTrend runs the band-flip recurrence over the bar sequence.
//
// Basic bands are (high+low)/2 +/- multiplier*ATR. The final upper band only
// tightens downward while the previous close stays at or below it, and resets
// to the basic band once breached; the final lower band mirrors that with the
// breach direction reversed. The trend line equals the final upper band while
// close <= final upper, else the final lower band.
func computeSuperTrend(bars model.BarSeries) Series {
	n := len(bars)
	if n <= superTrendPeriod {
		return undefined(n)
	}

	atr := talib.Atr(bars.Highs(), bars.Lows(), bars.Closes(), superTrendPeriod)
	out := make([]float64, n)

	start := superTrendPeriod
	hl2 := (bars[start].High + bars[start].Low) / 2
	finalUpper := hl2 + superTrendMultiplier*atr[start]
	finalLower := hl2 - superTrendMultiplier*atr[start]
	if bars[start].Close <= finalUpper {
		out[start] = finalUpper
	} else {
		out[start] = finalLower
	}

	for i := start + 1; i < n; i++ {
		hl2 = (bars[i].High + bars[i].Low) / 2
		upper := hl2 + superTrendMultiplier*atr[i]
		lower := hl2 - superTrendMultiplier*atr[i]

		prevClose := bars[i-1].Close
		if prevClose <= finalUpper {
			if upper < finalUpper {
				finalUpper = upper
			}
		} else {
			finalUpper = upper
		}
		if prevClose >= finalLower {
			if lower > finalLower {
				finalLower = lower
			}
		} else {
			finalLower = lower
		}

		if bars[i].Close <= finalUpper {
			out[i] = finalUpper
		} else {
			out[i] = finalLower
		}
	}

	return NewSeries(out, start)
}
