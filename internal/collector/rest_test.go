package collector

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"SignalScout/internal/model"
)

func TestRESTFetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/bars/daily" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("expected bearer auth, got %q", got)
		}
		if got := r.URL.Query().Get("symbol"); got != "WEGE3" {
			t.Errorf("expected symbol=WEGE3, got %q", got)
		}
		// Out of order on the wire; the fetcher sorts.
		json.NewEncoder(w).Encode([]restBar{
			{Timestamp: 1735862400, Open: 11, High: 11.5, Low: 10.8, Close: 11.2, Volume: 2000},
			{Timestamp: 1735776000, Open: 10, High: 10.5, Low: 9.8, Close: 10.2, Volume: 1000},
		})
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "secret", "")
	bars, err := f.FetchDailyBars("WEGE3", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Close != 10.2 || bars[1].Close != 11.2 {
		t.Errorf("bars not sorted ascending: %f, %f", bars[0].Close, bars[1].Close)
	}
}

func TestRESTEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	_, err := f.FetchDailyBars("NOPE", 365)
	if !errors.Is(err, model.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestRESTNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewRESTFetcher(srv.URL, "", "")
	_, err := f.FetchDailyBars("NOPE", 365)
	if !errors.Is(err, model.ErrNoData) {
		t.Fatalf("expected ErrNoData on 404, got %v", err)
	}
}

func TestMockFetcherGeneratesRequestedCount(t *testing.T) {
	f := &MockFetcher{BasePrice: 50}
	bars, err := f.FetchDailyBars("ANY", 120)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 120 {
		t.Fatalf("expected 120 bars, got %d", len(bars))
	}
	if err := bars.Validate(); err != nil {
		t.Errorf("generated bars should be well formed: %v", err)
	}
}
