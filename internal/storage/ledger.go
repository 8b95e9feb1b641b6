package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Event kinds recorded in the ledger.
const (
	EventPull     = "pull"
	EventReview   = "review"
	EventDaily    = "daily"
	EventRoll     = "roll"
	EventPurchase = "purchase"
	EventFusion   = "fusion"
	EventLevelUp  = "level_up"
)

type Event struct {
	ID          int64
	OccurredAt  time.Time
	Kind        string
	ItemID      string
	PointsDelta int
	Detail      string
}

// Ledger is an append-only sqlite history of economy events. It is an audit
// artifact; the JSON documents remain the authoritative state.
type Ledger struct {
	db *sql.DB
}

// OpenLedger opens (and creates if missing) the ledger database at path.
func OpenLedger(ctx context.Context, path string) (*Ledger, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open ledger: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping ledger: %w", err)
	}
	l := &Ledger{db: db}
	if err := l.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return l, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			occurred_at DATETIME NOT NULL,
			kind TEXT NOT NULL,
			item_id TEXT,
			points_delta INTEGER NOT NULL DEFAULT 0,
			detail TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);`,
		`CREATE INDEX IF NOT EXISTS idx_events_occurred_at ON events(occurred_at);`,
	}
	for _, stmt := range stmts {
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate ledger: %w", err)
		}
	}
	return nil
}

func (l *Ledger) Record(ctx context.Context, e Event) (int64, error) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	res, err := l.db.ExecContext(ctx, `
		INSERT INTO events (occurred_at, kind, item_id, points_delta, detail)
		VALUES (?, ?, ?, ?, ?)
	`, e.OccurredAt, e.Kind, e.ItemID, e.PointsDelta, e.Detail)
	if err != nil {
		return 0, fmt.Errorf("event insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("event last insert id: %w", err)
	}
	return id, nil
}

func (l *Ledger) CountKind(ctx context.Context, kind string) (int, error) {
	row := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE kind = ?`, kind)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("event count: %w", err)
	}
	return n, nil
}

// Totals returns the sum of positive and negative point movements.
func (l *Ledger) Totals(ctx context.Context) (earned int, spent int, err error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT
			COALESCE(SUM(CASE WHEN points_delta > 0 THEN points_delta ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN points_delta < 0 THEN -points_delta ELSE 0 END), 0)
		FROM events
	`)
	if err := row.Scan(&earned, &spent); err != nil {
		return 0, 0, fmt.Errorf("event totals: %w", err)
	}
	return earned, spent, nil
}

func (l *Ledger) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT id, occurred_at, kind, item_id, points_delta, detail
		FROM events
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("event list: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.OccurredAt, &e.Kind, &e.ItemID, &e.PointsDelta, &e.Detail); err != nil {
			return nil, fmt.Errorf("event scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("event rows: %w", err)
	}
	return out, nil
}
