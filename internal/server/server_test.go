package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SignalScout/internal/analyzer"
	"SignalScout/internal/collector"
	"SignalScout/internal/model"
	"SignalScout/internal/recorder"
	"SignalScout/internal/sentiment"
)

func flatBars(n int) model.BarSeries {
	bars := make(model.BarSeries, n)
	start := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = model.Bar{
			Date: start.AddDate(0, 0, i),
			Open: 100, High: 100, Low: 100, Close: 100, Volume: 1000,
		}
	}
	return bars
}

func newTestRouter(fetcher collector.Fetcher) http.Handler {
	a := analyzer.New(fetcher, sentiment.NewStatic(0))
	return SetupRoutes(a, recorder.NewNoopRecorder())
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: flatBars(300)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: flatBars(300)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/analyze/PETR4.SA", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var res model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Ticker != "PETR4.SA" {
		t.Errorf("expected ticker PETR4.SA, got %q", res.Ticker)
	}
	if res.Classification != model.ClassAvoidSell {
		t.Errorf("expected %q, got %q", model.ClassAvoidSell, res.Classification)
	}
	if res.TakeProfit != 130 {
		t.Errorf("expected take profit 130, got %f", res.TakeProfit)
	}
}

func TestAnalyzeUnknownTicker(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: model.BarSeries{}})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/analyze/NOPE", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAnalyzeInsufficientHistory(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: flatBars(1)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/analyze/THIN", nil))

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Err: errTimeout{}})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/analyze/DOWN", nil))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

type errTimeout struct{}

func (errTimeout) Error() string { return "upstream timeout" }

func TestHistoryEndpointEmpty(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: flatBars(300)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/history/PETR4.SA", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res struct {
		Ticker  string                    `json:"ticker"`
		History []recorder.StoredAnalysis `json:"history"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.History == nil {
		t.Error("history should be an empty array, not null")
	}
}

func TestHistoryRejectsBadLimit(t *testing.T) {
	router := newTestRouter(&collector.MockFetcher{Bars: flatBars(300)})
	for _, limit := range []string{"abc", "0", "-3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/history/PETR4.SA?limit="+limit, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("limit %q: expected 400, got %d", limit, w.Code)
		}
	}
}
