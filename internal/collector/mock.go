package collector

import (
	"time"

	"SignalScout/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars model.BarSeries
	Err  error

	// BasePrice seeds generated bars when Bars is nil.
	BasePrice float64
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, days int) (model.BarSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.BasePrice, days), nil
}

// GenerateMockBars produces a gently drifting series around basePrice.
func GenerateMockBars(basePrice float64, count int) model.BarSeries {
	bars := make(model.BarSeries, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Date:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
