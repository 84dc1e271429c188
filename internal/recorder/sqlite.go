package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"VitalSentinel/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder writes audit history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL so dashboards can read while the daemon writes.
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
		`CREATE TABLE IF NOT EXISTS ledger_entries (
			id          TEXT PRIMARY KEY,
			timestamp   INTEGER NOT NULL,
			kind        TEXT,
			direction   TEXT,
			amount      REAL,
			unit        TEXT,
			description TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_ts ON ledger_entries(timestamp)`,

		`CREATE TABLE IF NOT EXISTS wake_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			task      TEXT,
			message   TEXT,
			urgent    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_wakes_ts ON wake_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordEntry(e model.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT OR IGNORE INTO ledger_entries
		(id, timestamp, kind, direction, amount, unit, description)
		VALUES (?,?,?,?,?,?,?)`,
		e.ID, e.Timestamp.Unix(), string(e.Kind), string(e.Direction),
		e.Amount, string(e.Unit), e.Description,
	)
	return err
}

func (r *SQLiteRecorder) RecordWake(ev model.WakeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	urgent := 0
	if ev.Urgent {
		urgent = 1
	}
	_, err := r.db.Exec(`INSERT INTO wake_events
		(timestamp, task, message, urgent)
		VALUES (?,?,?,?)`,
		ev.Timestamp.Unix(), ev.Task, ev.Message, urgent,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
