package recorder

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SignalScout/internal/model"
)

// SQLiteRecorder persists analysis snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so history reads don't block scheduled writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			score          REAL,
			classification TEXT,
			entry_price    REAL,
			stop_loss      REAL,
			take_profit    REAL,
			signals        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ticker_ts ON analyses(ticker, timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	signals, err := json.Marshal(a.Signals)
	if err != nil {
		return fmt.Errorf("marshal signals: %w", err)
	}

	_, err = r.db.Exec(`INSERT INTO analyses
		(timestamp, ticker, score, classification, entry_price, stop_loss, take_profit, signals)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Ticker, a.Score, a.Classification,
		a.EntryPrice, a.StopLoss, a.TakeProfit, string(signals),
	)
	return err
}

func (r *SQLiteRecorder) RecentAnalyses(ticker string, limit int) ([]StoredAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.Query(`SELECT timestamp, ticker, score, classification,
		entry_price, stop_loss, take_profit, signals
		FROM analyses WHERE ticker = ? ORDER BY timestamp DESC LIMIT ?`,
		ticker, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredAnalysis
	for rows.Next() {
		var rec StoredAnalysis
		var ts int64
		var signals string
		if err := rows.Scan(&ts, &rec.Ticker, &rec.Score, &rec.Classification,
			&rec.EntryPrice, &rec.StopLoss, &rec.TakeProfit, &signals); err != nil {
			return nil, err
		}
		rec.Timestamp = time.Unix(ts, 0)
		if signals != "" {
			if err := json.Unmarshal([]byte(signals), &rec.Signals); err != nil {
				return nil, fmt.Errorf("unmarshal signals: %w", err)
			}
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
