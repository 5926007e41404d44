package strategy

import (
	"fmt"

	"SignalScout/internal/indicator"
	"SignalScout/internal/model"
)

// insufficientDetail is the sentinel breakdown entry for rules whose inputs
// are still inside their look-back window.
const insufficientDetail = "Insufficient data"

// maxPositiveRaw sums the positive-branch weights of the whole catalog. A
// ticker firing every positive rule therefore scores exactly 100 after
// scaling.
func maxPositiveRaw() float64 {
	var sum float64
	for _, r := range Catalog {
		sum += r.PositiveWeight
	}
	return sum
}

// Score evaluates the full rule catalog against the latest two rows of the
// frame and returns the normalized score with its breakdown. Pure function:
// the same inputs always produce the same result.
func Score(bars model.BarSeries, frame *indicator.Frame, sentiment float64) (*model.ScoreResult, error) {
	if len(bars) < 2 {
		return nil, model.ErrInsufficientHistory
	}

	scale := 100 / maxPositiveRaw()
	e := &Evaluation{
		Bars:      bars,
		Frame:     frame,
		Sentiment: sentiment,
		idx:       len(bars) - 1,
	}

	res := &model.ScoreResult{}
	for _, r := range Catalog {
		switch r.Evaluate(e) {
		case OutcomePositive:
			contrib := r.PositiveWeight * scale
			res.Raw += r.PositiveWeight
			res.Score += contrib
			res.Signals = append(res.Signals, model.SignalEntry{
				Rule:   r.Label,
				Detail: fmt.Sprintf("%+.1f%% (%s)", contrib, r.PositiveText),
			})
		case OutcomeNegative:
			contrib := r.NegativeWeight * scale
			res.Raw -= r.NegativeWeight
			res.Score -= contrib
			res.Signals = append(res.Signals, model.SignalEntry{
				Rule:   r.Label,
				Detail: fmt.Sprintf("%+.1f%% (%s)", -contrib, r.NegativeText),
			})
		case OutcomeInsufficientData:
			res.Signals = append(res.Signals, model.SignalEntry{
				Rule:   r.Label,
				Detail: insufficientDetail,
			})
		}
	}
	return res, nil
}

// Classify maps the normalized score to one of the four recommendation
// tiers. Fixed thresholds, no hysteresis.
func Classify(score float64) string {
	switch {
	case score >= 60:
		return model.ClassStrongBuy
	case score >= 40:
		return model.ClassModerateBuy
	case score >= 20:
		return model.ClassNeutral
	default:
		return model.ClassAvoidSell
	}
}
