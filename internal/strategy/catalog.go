package strategy

import (
	"math"

	"SignalScout/internal/indicator"
	"SignalScout/internal/model"
)

// Outcome is the result of evaluating one rule against the latest bars.
// Branches within a rule are decided by an ordered guard chain, so at most
// one of them fires per evaluation.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePositive
	OutcomeNegative
	OutcomeInsufficientData
)

// Rule is one immutable entry of the catalog: a label, both branch weights,
// the human-readable branch descriptions, and the guard chain.
type Rule struct {
	Label          string
	PositiveWeight float64
	NegativeWeight float64
	PositiveText   string
	NegativeText   string
	Evaluate       func(e *Evaluation) Outcome
}

// Evaluation carries everything a rule may read: the bar series, the derived
// indicator frame and the external sentiment scalar. Rules only look at the
// latest and previous rows, except Swing Low and RSI which use short
// trailing windows.
type Evaluation struct {
	Bars      model.BarSeries
	Frame     *indicator.Frame
	Sentiment float64

	idx int
}

func (e *Evaluation) latest(s indicator.Series) (float64, bool) {
	return s.At(e.idx)
}

// pair returns the previous and latest values of a series, defined only when
// both are.
func (e *Evaluation) pair(s indicator.Series) (prev, cur float64, ok bool) {
	prev, okPrev := s.At(e.idx - 1)
	cur, okCur := s.At(e.idx)
	return prev, cur, okPrev && okCur
}

func (e *Evaluation) close() float64 { return e.Bars.Latest().Close }

func (e *Evaluation) prevClose() float64 { return e.Bars.Prev().Close }

// Catalog is the fixed, ordered rule set. It is constructed once and never
// mutated; every scoring request walks it in this order.
var Catalog = []Rule{
	{Label: "RSI", PositiveWeight: 10, NegativeWeight: 10,
		PositiveText: "RSI low and rising", NegativeText: "RSI overbought",
		Evaluate: ruleRSI},
	{Label: "Stochastic", PositiveWeight: 8, NegativeWeight: 5,
		PositiveText: "Bullish stochastic crossover below 20", NegativeText: "Bearish stochastic crossover above 80",
		Evaluate: ruleStochastic},
	{Label: "MACD", PositiveWeight: 12, NegativeWeight: 10,
		PositiveText: "Bullish MACD crossover near zero", NegativeText: "Bearish MACD crossover above zero",
		Evaluate: ruleMACD},
	{Label: "Moving Averages", PositiveWeight: 8, NegativeWeight: 8,
		PositiveText: "Price crossed above EMA20, with EMA9 > EMA20 and price > SMA50", NegativeText: "Price below SMA50",
		Evaluate: ruleMovingAverages},
	{Label: "Bollinger Bands", PositiveWeight: 8, NegativeWeight: 5,
		PositiveText: "Price rebounding from lower Bollinger Band", NegativeText: "Price falling from upper Bollinger Band",
		Evaluate: ruleBollinger},
	{Label: "Support Bounce", PositiveWeight: 8, NegativeWeight: 8,
		PositiveText: "Price bounced from support level", NegativeText: "Price broke support level",
		Evaluate: ruleSupportBounce},
	{Label: "Volume", PositiveWeight: 10, NegativeWeight: 5,
		PositiveText: "Volume spike on rebound", NegativeText: "Volume below average on breakout",
		Evaluate: ruleVolume},
	{Label: "OBV", PositiveWeight: 8, NegativeWeight: 5,
		PositiveText: "OBV rising with price", NegativeText: "Divergence: OBV falling while price rising",
		Evaluate: ruleOBV},
	{Label: "Candlestick", PositiveWeight: 5, NegativeWeight: 5,
		PositiveText: "Bullish candlestick pattern", NegativeText: "Bearish candlestick pattern",
		Evaluate: ruleCandlestick},
	{Label: "ADX", PositiveWeight: 5, NegativeWeight: 5,
		PositiveText: "ADX indicates a strong trend", NegativeText: "ADX indicates a weak trend",
		Evaluate: ruleADX},
	{Label: "Swing Low", PositiveWeight: 5, NegativeWeight: 5,
		PositiveText: "Price bounced from recent swing low", NegativeText: "Price broke recent swing low",
		Evaluate: ruleSwingLow},
	{Label: "Ichimoku", PositiveWeight: 10,
		PositiveText: "Price above Ichimoku cloud",
		Evaluate:     ruleIchimoku},
	{Label: "MFI", PositiveWeight: 10, NegativeWeight: 10,
		PositiveText: "MFI oversold and rising", NegativeText: "MFI overbought",
		Evaluate: ruleMFI},
	{Label: "Weekly SMA", PositiveWeight: 5,
		PositiveText: "Price above weekly SMA",
		Evaluate:     ruleWeeklySMA},
	{Label: "SuperTrend", PositiveWeight: 5,
		PositiveText: "Price above SuperTrend",
		Evaluate:     ruleSuperTrend},
	{Label: "Sentiment", PositiveWeight: 5, NegativeWeight: 5,
		PositiveText: "Positive news sentiment", NegativeText: "Negative news sentiment",
		Evaluate: ruleSentiment},
}

// ruleRSI: positive when the last three RSI values sit at or below 30 with
// the latest ticking up; negative when the latest exceeds 70.
func ruleRSI(e *Evaluation) Outcome {
	if e.idx < 2 {
		return OutcomeInsufficientData
	}
	r0, ok0 := e.Frame.RSI.At(e.idx - 2)
	r1, ok1 := e.Frame.RSI.At(e.idx - 1)
	r2, ok2 := e.Frame.RSI.At(e.idx)
	if !ok0 || !ok1 || !ok2 {
		return OutcomeInsufficientData
	}
	switch {
	case r0 <= 30 && r1 <= 30 && r2 <= 30 && r2 > r1:
		return OutcomePositive
	case r2 > 70:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleStochastic(e *Evaluation) Outcome {
	pk, ck, okK := e.pair(e.Frame.SlowK)
	pd, cd, okD := e.pair(e.Frame.SlowD)
	if !okK || !okD {
		return OutcomeInsufficientData
	}
	switch {
	case pk < pd && ck > cd && ck < 20:
		return OutcomePositive
	case pk > pd && ck < cd && ck > 80:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleMACD(e *Evaluation) Outcome {
	pm, cm, okM := e.pair(e.Frame.MACD)
	ps, cs, okS := e.pair(e.Frame.MACDSignal)
	hist, okH := e.latest(e.Frame.MACDHist)
	if !okM || !okS || !okH {
		return OutcomeInsufficientData
	}
	switch {
	case pm < ps && cm > cs && math.Abs(cm) < 0.5 && hist > 0:
		return OutcomePositive
	case pm > ps && cm < cs && cm > 0:
		return OutcomeNegative
	}
	return OutcomeNone
}

// ruleMovingAverages: the positive crossover guard is checked first; the
// negative below-SMA50 branch only applies when it fails.
func ruleMovingAverages(e *Evaluation) Outcome {
	pe20, ce20, ok20 := e.pair(e.Frame.EMA20)
	ce9, ok9 := e.latest(e.Frame.EMA9)
	c50, ok50 := e.latest(e.Frame.SMA50)
	if !ok20 || !ok9 || !ok50 {
		return OutcomeInsufficientData
	}
	switch {
	case e.prevClose() < pe20 && e.close() > ce20 && ce9 > ce20 && e.close() > c50:
		return OutcomePositive
	case e.close() < c50:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleBollinger(e *Evaluation) Outcome {
	pl, cl, okL := e.pair(e.Frame.BBLower)
	pu, cu, okU := e.pair(e.Frame.BBUpper)
	mid, okM := e.latest(e.Frame.BBMiddle)
	if !okL || !okU || !okM {
		return OutcomeInsufficientData
	}
	switch {
	case e.prevClose() < pl && e.close() > cl && e.close() < mid:
		return OutcomePositive
	case e.prevClose() > pu && e.close() < cu:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleSupportBounce(e *Evaluation) Outcome {
	p50, c50, ok50 := e.pair(e.Frame.SMA50)
	pLow52, okLow := e.Frame.Low52Week.At(e.idx - 1)
	if !ok50 || !okLow {
		return OutcomeInsufficientData
	}
	switch {
	case (e.prevClose() <= p50 || e.prevClose() <= pLow52*1.05) && e.close() > c50:
		return OutcomePositive
	case e.prevClose() >= p50 && e.close() < c50:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleVolume(e *Evaluation) Outcome {
	avg, ok := e.latest(e.Frame.AvgVolume)
	if !ok {
		return OutcomeInsufficientData
	}
	vol := e.Bars.Latest().Volume
	rose := e.close() > e.prevClose()
	switch {
	case vol >= 2*avg && rose:
		return OutcomePositive
	case vol < avg && rose:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleOBV(e *Evaluation) Outcome {
	po, co, ok := e.pair(e.Frame.OBV)
	if !ok {
		return OutcomeInsufficientData
	}
	rose := e.close() > e.prevClose()
	switch {
	case co > po && rose:
		return OutcomePositive
	case co < po && rose:
		return OutcomeNegative
	}
	return OutcomeNone
}

// ruleCandlestick: bullish patterns take precedence; a bearish shooting star
// is only reported when no bullish pattern matched on the same bar.
func ruleCandlestick(e *Evaluation) Outcome {
	prev, cur := e.Bars.Prev(), e.Bars.Latest()
	switch {
	case indicator.IsHammer(cur) || indicator.IsBullishEngulfing(prev, cur):
		return OutcomePositive
	case indicator.IsShootingStar(cur):
		return OutcomeNegative
	}
	return OutcomeNone
}

// ruleADX always fires exactly one branch when the value is defined.
func ruleADX(e *Evaluation) Outcome {
	adx, ok := e.latest(e.Frame.ADX)
	if !ok {
		return OutcomeInsufficientData
	}
	if adx > 20 {
		return OutcomePositive
	}
	return OutcomeNegative
}

// ruleSwingLow is skipped outright, with no breakdown entry, until seven
// bars exist.
func ruleSwingLow(e *Evaluation) Outcome {
	if len(e.Bars) < 7 {
		return OutcomeNone
	}
	swing := e.Bars[e.idx-6].Low
	for i := e.idx - 5; i < e.idx; i++ {
		if e.Bars[i].Low < swing {
			swing = e.Bars[i].Low
		}
	}
	prevLow := e.Bars.Prev().Low
	if math.Abs(prevLow-swing)/swing >= 0.01 {
		return OutcomeNone
	}
	switch {
	case e.close() > prevLow:
		return OutcomePositive
	case e.close() < prevLow:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleIchimoku(e *Evaluation) Outcome {
	spanA, okA := e.latest(e.Frame.SpanA)
	spanB, okB := e.latest(e.Frame.SpanB)
	if !okA || !okB {
		return OutcomeInsufficientData
	}
	if e.close() > spanA && e.close() > spanB {
		return OutcomePositive
	}
	return OutcomeNone
}

func ruleMFI(e *Evaluation) Outcome {
	pm, cm, ok := e.pair(e.Frame.MFI)
	if !ok {
		return OutcomeInsufficientData
	}
	switch {
	case cm < 20 && cm > pm:
		return OutcomePositive
	case cm > 80:
		return OutcomeNegative
	}
	return OutcomeNone
}

func ruleWeeklySMA(e *Evaluation) Outcome {
	if e.close() > e.Frame.WeeklySMA {
		return OutcomePositive
	}
	return OutcomeNone
}

func ruleSuperTrend(e *Evaluation) Outcome {
	st, ok := e.latest(e.Frame.SuperTrend)
	if !ok {
		return OutcomeInsufficientData
	}
	if e.close() > st {
		return OutcomePositive
	}
	return OutcomeNone
}

func ruleSentiment(e *Evaluation) Outcome {
	switch {
	case e.Sentiment > 0.1:
		return OutcomePositive
	case e.Sentiment < -0.1:
		return OutcomeNegative
	}
	return OutcomeNone
}
