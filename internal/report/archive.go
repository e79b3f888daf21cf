package report

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Harisholympas/echoes-within1/internal/logging"
)

// Archive is the local reading store. Appends are best-effort: the caller
// logs failures and moves on, the experience never depends on the archive.
type Archive struct {
	db     *sql.DB
	dbPath string
}

// OpenArchive creates or opens the archive database inside dir.
func OpenArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	dbPath := filepath.Join(dir, "echoes.db")

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	a := &Archive{db: db, dbPath: dbPath}
	if err := a.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize archive schema: %w", err)
	}
	return a, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the database file path.
func (a *Archive) Path() string {
	return a.dbPath
}

func (a *Archive) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS readings (
		id TEXT PRIMARY KEY,
		player_name TEXT NOT NULL,
		outcome TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		payload_json TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_readings_created ON readings(created_at DESC);
	`
	_, err := a.db.Exec(schema)
	return err
}

// Append stores a finished reading.
func (a *Archive) Append(r Reading) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode reading: %w", err)
	}
	_, err = a.db.Exec(
		`INSERT INTO readings (id, player_name, outcome, created_at, payload_json) VALUES (?, ?, ?, ?, ?)`,
		r.ID, r.PlayerName, r.OutcomeTitle, r.Timestamp, string(payload),
	)
	if err != nil {
		logging.StoreError("append reading %s: %v", r.ID, err)
		return fmt.Errorf("failed to append reading: %w", err)
	}
	logging.Report("archived reading %s for %q (%s)", r.ID, r.PlayerName, r.OutcomeTitle)
	return nil
}

// List returns the most recent readings, newest first. A limit of 0 means
// no limit.
func (a *Archive) List(limit int) ([]Reading, error) {
	query := `SELECT payload_json FROM readings ORDER BY created_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := a.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	defer rows.Close()

	var readings []Reading
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		var r Reading
		if err := json.Unmarshal([]byte(payload), &r); err != nil {
			// A corrupt row is skipped, not fatal.
			logging.StoreError("skipping corrupt reading row: %v", err)
			continue
		}
		readings = append(readings, r)
	}
	return readings, rows.Err()
}

// Get returns the archived reading with the given id, or an id prefix when
// the prefix is unambiguous.
func (a *Archive) Get(id string) (Reading, error) {
	var payload string
	err := a.db.QueryRow(`SELECT payload_json FROM readings WHERE id = ?`, id).Scan(&payload)
	if err == sql.ErrNoRows {
		rows, qerr := a.db.Query(`SELECT payload_json FROM readings WHERE id LIKE ? LIMIT 2`, id+"%")
		if qerr != nil {
			return Reading{}, fmt.Errorf("failed to look up reading %s: %w", id, qerr)
		}
		defer rows.Close()
		var matches []string
		for rows.Next() {
			var p string
			if serr := rows.Scan(&p); serr != nil {
				return Reading{}, fmt.Errorf("failed to scan reading: %w", serr)
			}
			matches = append(matches, p)
		}
		if rerr := rows.Err(); rerr != nil {
			return Reading{}, rerr
		}
		switch len(matches) {
		case 0:
			return Reading{}, fmt.Errorf("no reading with id %s", id)
		case 1:
			payload = matches[0]
		default:
			return Reading{}, fmt.Errorf("id prefix %s is ambiguous", id)
		}
	} else if err != nil {
		return Reading{}, fmt.Errorf("failed to look up reading %s: %w", id, err)
	}

	var r Reading
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return Reading{}, fmt.Errorf("failed to decode reading %s: %w", id, err)
	}
	return r, nil
}
