// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const ledgerFile = "runs.db"

// Run statuses recorded in the ledger.
const (
	RunStarted   = "started"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// Run is one pipeline or translation invocation.
type Run struct {
	ID        int64
	ArticleID string
	Kind      string
	Lang      string
	Status    string
	Detail    string
	StartedAt time.Time
	EndedAt   time.Time
}

// Ledger records every generation, compile, and translation run in SQLite
// so operators can audit what happened to an article after the fact.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens or creates dir/runs.db and its schema.
func OpenLedger(dir string) (*Ledger, error) {
	dbPath := filepath.Join(dir, ledgerFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening run ledger: %w", err)
	}
	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			article_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			lang TEXT,
			status TEXT NOT NULL,
			detail TEXT,
			started_at TEXT NOT NULL,
			ended_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_article ON runs(article_id)`,
	}
	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Begin records the start of a run and returns its row ID.
func (l *Ledger) Begin(ctx context.Context, articleID, kind, lang string) (int64, error) {
	res, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (article_id, kind, lang, status, started_at) VALUES (?, ?, ?, ?, ?)`,
		articleID, kind, lang, RunStarted, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("recording run start: %w", err)
	}
	return res.LastInsertId()
}

// End records the outcome of a run. A nil runErr marks success; otherwise the
// error text is stored as the failure detail.
func (l *Ledger) End(ctx context.Context, runID int64, runErr error) error {
	status, detail := RunSucceeded, ""
	if runErr != nil {
		status, detail = RunFailed, runErr.Error()
	}
	_, err := l.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, detail = ?, ended_at = ? WHERE id = ?`,
		status, detail, time.Now().UTC().Format(time.RFC3339Nano), runID,
	)
	if err != nil {
		return fmt.Errorf("recording run end: %w", err)
	}
	return nil
}

// History returns the runs for one article, newest first.
func (l *Ledger) History(ctx context.Context, articleID string) ([]Run, error) {
	rows, err := l.db.QueryContext(ctx,
		`SELECT id, article_id, kind, lang, status, COALESCE(detail, ''), started_at, COALESCE(ended_at, '')
		 FROM runs WHERE article_id = ? ORDER BY id DESC`, articleID)
	if err != nil {
		return nil, fmt.Errorf("querying run history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started, ended string
		if err := rows.Scan(&r.ID, &r.ArticleID, &r.Kind, &r.Lang, &r.Status, &r.Detail, &started, &ended); err != nil {
			return nil, fmt.Errorf("scanning run row: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
		if ended != "" {
			r.EndedAt, _ = time.Parse(time.RFC3339Nano, ended)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
