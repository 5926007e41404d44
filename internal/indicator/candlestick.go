package indicator

import (
	"math"

	"SignalScout/internal/model"
)

// Candlestick pattern checks over the latest one or two bars. Thresholds are
// expressed as body/shadow ratios of the bar's full range.

func bodySize(b model.Bar) float64 { return math.Abs(b.Close - b.Open) }

func candleRange(b model.Bar) float64 { return b.High - b.Low }

func upperShadow(b model.Bar) float64 { return b.High - math.Max(b.Open, b.Close) }

func lowerShadow(b model.Bar) float64 { return math.Min(b.Open, b.Close) - b.Low }

// IsHammer reports a small-bodied bar with a long lower shadow and almost no
// upper shadow.
func IsHammer(b model.Bar) bool {
	rng := candleRange(b)
	if rng <= 0 {
		return false
	}
	body := bodySize(b)
	return body <= 0.3*rng &&
		lowerShadow(b) >= 2*body &&
		upperShadow(b) <= 0.1*rng
}

// IsBullishEngulfing reports a bullish bar whose body engulfs the previous
// bearish bar's body.
func IsBullishEngulfing(prev, cur model.Bar) bool {
	return prev.Close < prev.Open &&
		cur.Close > cur.Open &&
		cur.Open < prev.Close &&
		cur.Close > prev.Open
}

// IsShootingStar reports a small-bodied bar with a long upper shadow and
// almost no lower shadow.
func IsShootingStar(b model.Bar) bool {
	rng := candleRange(b)
	if rng <= 0 {
		return false
	}
	body := bodySize(b)
	return body <= 0.3*rng &&
		upperShadow(b) >= 2*body &&
		lowerShadow(b) <= 0.1*rng
}
