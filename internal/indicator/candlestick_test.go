package indicator

import (
	"testing"

	"SignalScout/internal/model"
)

func TestIsHammer(t *testing.T) {
	tests := []struct {
		name string
		bar  model.Bar
		want bool
	}{
		{
			name: "long lower shadow small body",
			bar:  model.Bar{Open: 10, High: 10.02, Low: 9, Close: 9.9},
			want: true,
		},
		{
			name: "body too large",
			bar:  model.Bar{Open: 10, High: 10.1, Low: 9, Close: 9.3},
			want: false,
		},
		{
			name: "upper shadow too long",
			bar:  model.Bar{Open: 10, High: 10.5, Low: 9, Close: 9.9},
			want: false,
		},
		{
			name: "zero range",
			bar:  model.Bar{Open: 10, High: 10, Low: 10, Close: 10},
			want: false,
		},
	}
	for _, tt := range tests {
		if got := IsHammer(tt.bar); got != tt.want {
			t.Errorf("%s: IsHammer = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsShootingStar(t *testing.T) {
	star := model.Bar{Open: 10, High: 11, Low: 9.98, Close: 10.1}
	if !IsShootingStar(star) {
		t.Error("expected shooting star for long upper shadow and small body")
	}
	hammer := model.Bar{Open: 10, High: 10.02, Low: 9, Close: 9.9}
	if IsShootingStar(hammer) {
		t.Error("hammer shape should not register as shooting star")
	}
	if IsShootingStar(model.Bar{Open: 10, High: 10, Low: 10, Close: 10}) {
		t.Error("zero-range bar should not register as shooting star")
	}
}

func TestIsBullishEngulfing(t *testing.T) {
	prev := model.Bar{Open: 97, High: 97.5, Low: 93, Close: 95}
	cur := model.Bar{Open: 94, High: 100.5, Low: 93.5, Close: 100}
	if !IsBullishEngulfing(prev, cur) {
		t.Error("expected bullish engulfing")
	}

	// Previous bar bullish: no engulfing regardless of the current bar.
	if IsBullishEngulfing(model.Bar{Open: 95, High: 97.5, Low: 93, Close: 97}, cur) {
		t.Error("previous bullish bar should not engulf")
	}

	// Current body does not cover the previous body.
	small := model.Bar{Open: 95.5, High: 96.5, Low: 95, Close: 96}
	if IsBullishEngulfing(prev, small) {
		t.Error("current body inside previous body should not engulf")
	}
}
