package sentiment

// Provider supplies a news sentiment score for a ticker, in [-1, 1].
type Provider interface {
	Score(symbol string) (float64, error)
	Name() string
}

// Static is a stub Provider returning a fixed score. A real implementation
// would integrate with a news/sentiment API behind the same interface.
type Static struct {
	Value float64
}

func NewStatic(value float64) *Static { return &Static{Value: value} }

func (s *Static) Name() string { return "static" }

func (s *Static) Score(_ string) (float64, error) { return s.Value, nil }
