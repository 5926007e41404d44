package model

import (
	"errors"
	"testing"
	"time"
)

func validSeries() BarSeries {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return BarSeries{
		{Date: start, Open: 100, High: 102, Low: 99, Close: 101, Volume: 1000},
		{Date: start.AddDate(0, 0, 1), Open: 101, High: 103, Low: 100, Close: 102, Volume: 1100},
	}
}

func TestValidateAcceptsWellFormedSeries(t *testing.T) {
	if err := validSeries().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMalformedBars(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(BarSeries)
	}{
		{"non-positive price", func(s BarSeries) { s[1].Close = 0 }},
		{"negative volume", func(s BarSeries) { s[1].Volume = -1 }},
		{"high below low", func(s BarSeries) { s[1].High = 99.5; s[1].Low = 100.5 }},
		{"low above close", func(s BarSeries) { s[1].Low = 102.5; s[1].High = 104 }},
		{"duplicate date", func(s BarSeries) { s[1].Date = s[0].Date }},
		{"out of order", func(s BarSeries) { s[1].Date = s[0].Date.AddDate(0, 0, -1) }},
	}
	for _, tt := range tests {
		s := validSeries()
		tt.mutate(s)
		if err := s.Validate(); !errors.Is(err, ErrMalformedBar) {
			t.Errorf("%s: expected ErrMalformedBar, got %v", tt.name, err)
		}
	}
}

func TestLatestAndPrev(t *testing.T) {
	s := validSeries()
	if s.Latest().Close != 102 {
		t.Errorf("Latest: expected close 102, got %f", s.Latest().Close)
	}
	if s.Prev().Close != 101 {
		t.Errorf("Prev: expected close 101, got %f", s.Prev().Close)
	}
}
