// Package catalog keeps a SQLite history of scans: every run and the
// metadata of each file it recognized.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/provide-io/vrmsort/pkg/vrm/meta"
)

// Run is one invocation of a scanning command.
type Run struct {
	ID        string    `json:"id"`
	Command   string    `json:"command"`
	StartedAt time.Time `json:"started_at"`
	Files     int       `json:"files"`
}

// Entry is one recognized file within a run.
type Entry struct {
	ID          string               `json:"id"`
	RunID       string               `json:"run_id"`
	Path        string               `json:"path"`
	Checksum    string               `json:"checksum"`
	Destination string               `json:"destination,omitempty"`
	Metadata    meta.UnifiedMetadata `json:"metadata"`
}

// Catalog is the SQLite-backed scan history.
type Catalog struct {
	db *sql.DB

	mu      sync.Mutex
	entropy io.Reader
}

// Open opens or creates the catalog database at dbPath.
func Open(dbPath string) (*Catalog, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	c := &Catalog{
		db:      db,
		// monotonic so ids issued within one millisecond still sort in order
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return c, nil
}

// Close closes the database.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) newID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), c.entropy).String()
}

// metadataColumns mirrors meta.Fields; column names are the field names.
func metadataColumns() string {
	cols := make([]string, len(meta.Fields))
	for i, f := range meta.Fields {
		cols[i] = f + " TEXT NOT NULL"
	}
	return strings.Join(cols, ",\n\t\t")
}

func (c *Catalog) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		command     TEXT NOT NULL,
		started_at  TEXT NOT NULL,
		files       INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS entries (
		id          TEXT PRIMARY KEY,
		run_id      TEXT NOT NULL REFERENCES runs(id),
		path        TEXT NOT NULL,
		checksum    TEXT NOT NULL,
		destination TEXT,
		` + metadataColumns() + `
	);
	CREATE INDEX IF NOT EXISTS idx_entries_run ON entries(run_id);
	CREATE INDEX IF NOT EXISTS idx_entries_checksum ON entries(checksum);
	`
	_, err := c.db.Exec(schema)
	return err
}

// BeginRun registers a new run.
func (c *Catalog) BeginRun(ctx context.Context, command string) (Run, error) {
	run := Run{ID: c.newID(), Command: command, StartedAt: time.Now().UTC()}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO runs (id, command, started_at) VALUES (?, ?, ?)`,
		run.ID, run.Command, run.StartedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Add stores one file of a run and bumps the run's file count.
func (c *Catalog) Add(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = c.newID()
	}

	cols := append([]string{"id", "run_id", "path", "checksum", "destination"}, meta.Fields...)
	args := []any{e.ID, e.RunID, e.Path, e.Checksum, nullable(e.Destination)}
	for _, v := range e.Metadata.Values() {
		args = append(args, v)
	}
	query := fmt.Sprintf(`INSERT INTO entries (%s) VALUES (?%s)`,
		strings.Join(cols, ", "), strings.Repeat(", ?", len(cols)-1))

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return Entry{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE runs SET files = files + 1 WHERE id = ?`, e.RunID); err != nil {
		return Entry{}, fmt.Errorf("update run: %w", err)
	}
	return e, tx.Commit()
}

// Runs lists runs newest first.
func (c *Catalog) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, command, started_at, files FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started string
		if err := rows.Scan(&r.ID, &r.Command, &started, &r.Files); err != nil {
			return nil, err
		}
		r.StartedAt, err = time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil, fmt.Errorf("run %s: invalid started_at: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Entries returns the files of a run in insertion order.
func (c *Catalog) Entries(ctx context.Context, runID string) ([]Entry, error) {
	cols := append([]string{"id", "run_id", "path", "checksum", "destination"}, meta.Fields...)
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM entries WHERE run_id = ? ORDER BY id`, strings.Join(cols, ", ")), runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var dest sql.NullString
		values := make([]string, len(meta.Fields))
		scan := []any{&e.ID, &e.RunID, &e.Path, &e.Checksum, &dest}
		for i := range values {
			scan = append(scan, &values[i])
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, err
		}
		e.Destination = dest.String
		e.Metadata = fromValues(values)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func fromValues(v []string) meta.UnifiedMetadata {
	return meta.UnifiedMetadata{
		FileName:           v[0],
		VRMVersion:         v[1],
		ModelName:          v[2],
		Author:             v[3],
		Contact:            v[4],
		ReferenceURL:       v[5],
		CommercialUsage:    v[6],
		Redistribution:     v[7],
		CreditNotation:     v[8],
		Modification:       v[9],
		AvatarPermission:   v[10],
		SexualExpression:   v[11],
		ViolenceExpression: v[12],
		License:            v[13],
		OtherPermissionURL: v[14],
		OtherLicenseURL:    v[15],
	}
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
