// Copyright Meridian Materials Lab Ltd., 2026. All rights reserved.

// Package store archives extraction runs in a local SQLite database so
// past runs can be listed and their records reloaded for re-export.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wkcheung/cubereport/internal/validate"
	"github.com/wkcheung/cubereport/pkg/types"
)

const defaultDBFile = "cubereport.db"

// Store manages the run archive database.
type Store struct {
	db *sql.DB
}

// New opens or creates the archive database at cfg.DBPath, creating the
// schema if it does not exist.
func New(cfg types.StoreConfig) (*Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = defaultDBFile
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			record_count INTEGER NOT NULL,
			problem_count INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			seq INTEGER NOT NULL,
			mark_prefix TEXT NOT NULL,
			mark_number TEXT NOT NULL,
			mark_suffix TEXT NOT NULL,
			report_number TEXT,
			date_cast TEXT,
			strength_mpa REAL NOT NULL,
			pour_location TEXT,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS problems (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			row INTEGER NOT NULL,
			kind TEXT NOT NULL,
			field TEXT,
			detail TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_problems_run_id ON problems(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun persists one extraction run transactionally and returns the
// new run ID. Record sequence order is preserved through the seq column.
func (s *Store) SaveRun(ctx context.Context, source string, records []types.Record, problems []validate.Problem) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (source, created_at, record_count, problem_count) VALUES (?, ?, ?, ?)`,
		source, time.Now().UTC().Format(time.RFC3339), len(records), len(problems),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, seq, mark_prefix, mark_number, mark_suffix, report_number, date_cast, strength_mpa, pour_location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing record insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx,
			runID, i, r.MarkPrefix, r.MarkNumber, r.MarkSuffix,
			r.ReportNumber, r.DateCast, r.StrengthMPa, r.PourLocation,
		); err != nil {
			return 0, fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	for _, p := range problems {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO problems (run_id, row, kind, field, detail) VALUES (?, ?, ?, ?, ?)`,
			runID, p.Row, string(p.Kind), p.Field, p.Detail,
		); err != nil {
			return 0, fmt.Errorf("inserting problem for row %d: %w", p.Row, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Run summarizes one archived extraction run.
type Run struct {
	ID        int64
	Source    string
	CreatedAt string
	Records   int
	Problems  int
}

// ListRuns returns all archived runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, record_count, problem_count FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Source, &r.CreatedAt, &r.Records, &r.Problems); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Records reloads one run's records in their original sequence order.
func (s *Store) Records(ctx context.Context, runID int64) ([]types.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mark_prefix, mark_number, mark_suffix, report_number, date_cast, strength_mpa, pour_location
		 FROM records WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying records for run %d: %w", runID, err)
	}
	defer rows.Close()

	var records []types.Record
	for rows.Next() {
		var r types.Record
		if err := rows.Scan(&r.MarkPrefix, &r.MarkNumber, &r.MarkSuffix,
			&r.ReportNumber, &r.DateCast, &r.StrengthMPa, &r.PourLocation); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// PrintRuns writes a run listing to w.
func PrintRuns(runs []Run, w io.Writer) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return
	}
	fmt.Fprintf(w, "%-5s  %-20s  %-8s  %-8s  %s\n", "ID", "Created", "Records", "Problems", "Source")
	for _, r := range runs {
		fmt.Fprintf(w, "%-5d  %-20s  %-8d  %-8d  %s\n", r.ID, r.CreatedAt, r.Records, r.Problems, r.Source)
	}
}
