package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"SignalScout/internal/analyzer"
	"SignalScout/internal/recorder"
	"SignalScout/internal/scheduler"
	"SignalScout/internal/server"
)

var serverCMD = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP API server",
	Long:  `Start the HTTP API server and, when a watchlist is configured, the cron-driven watchlist scanner.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func runServer() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SignalScout starting...")

	cfg := mustLoadConfig()

	fetcher := newFetcher(cfg)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := analyzer.New(fetcher, newSentiment(cfg))

	// Init watchlist scheduler
	var sched *scheduler.Scheduler
	if len(cfg.Watchlist.Symbols) > 0 {
		sched = scheduler.NewScheduler(a, rec, cfg.Watchlist.Symbols)
		if err := sched.Register(cfg.Watchlist.Cron); err != nil {
			log.Fatalf("[FATAL] register watchlist scan: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("SCAN_ON_START") == "true" {
			log.Println("[INFO] SCAN_ON_START enabled, scanning watchlist now")
			go sched.ScanWatchlist()
		}
	}

	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: server.SetupRoutes(a, rec),
	}
	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] SignalScout stopped")
}
