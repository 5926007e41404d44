package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"SignalScout/internal/analyzer"
	"SignalScout/internal/recorder"
)

// Scheduler periodically re-analyzes the configured watchlist and records
// the snapshots.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Recorder recorder.Recorder
	Symbols  []string
}

// NewScheduler creates a new Scheduler.
func NewScheduler(a *analyzer.Analyzer, rec recorder.Recorder, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Recorder: rec,
		Symbols:  symbols,
	}
}

// Register schedules the watchlist scan at the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.ScanWatchlist); err != nil {
		return fmt.Errorf("register watchlist scan: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// ScanWatchlist analyzes every watchlist symbol once and records the results.
func (s *Scheduler) ScanWatchlist() {
	log.Printf("[INFO] running watchlist scan (%d symbols)", len(s.Symbols))
	for _, symbol := range s.Symbols {
		result, err := s.Analyzer.Analyze(symbol)
		if err != nil {
			log.Printf("[ERROR] watchlist analyze %s: %v", symbol, err)
			continue
		}
		if err := s.Recorder.RecordAnalysis(result); err != nil {
			log.Printf("[ERROR] watchlist record %s: %v", symbol, err)
			continue
		}
		log.Printf("[INFO] watchlist %s: score=%.1f classification=%s", symbol, result.Score, result.Classification)
	}
}
