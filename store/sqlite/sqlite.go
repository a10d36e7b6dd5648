/*
Package sqlite provides SQLite-backed persistence for physician profiles.

PURPOSE:
  Stores named employment input records so a physician's parameters can
  be recalled and recalculated on demand. Calculation results are never
  persisted - compensation is a pure function of the profile and the
  configured rate tables, so storing outputs would only let them drift
  from the inputs.

KEY TABLE:
  profiles: One row per physician profile. Shift day counts are stored
  as a JSON object in shift_days_json; everything else is a plain column.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With PostgreSQL the database's
  own concurrency control would take over.

USAGE:
  store, err := sqlite.New("./data/comp.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  // Use ":memory:" in tests.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - physician/profile.go: The record being persisted
  - api/handlers.go: The store's only consumer
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/agonzalez06/hospitalist-calculator/physician"
)

// ErrNotFound is returned when a profile does not exist.
var ErrNotFound = errors.New("profile not found")

// Store persists physician profiles in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to ":memory:" gets its own empty database;
	// pin the pool to one connection so the schema survives.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Physician profiles (input records only; results are never stored)
	CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		start_date TEXT NOT NULL,
		leave_days INTEGER NOT NULL DEFAULT 0,
		status_fte REAL NOT NULL DEFAULT 1.0,
		non_clinical_fte REAL NOT NULL DEFAULT 0,
		other_dept_fte REAL NOT NULL DEFAULT 0,
		academic_rank TEXT NOT NULL,
		shift_days_json TEXT NOT NULL DEFAULT '{}',
		graduation_year INTEGER NOT NULL,
		addiction_board_certified INTEGER NOT NULL DEFAULT 0,
		other_stipend REAL NOT NULL DEFAULT 0,
		autofill_direct_care INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// PROFILE CRUD
// =============================================================================

// SaveProfile inserts or updates a profile.
func (s *Store) SaveProfile(ctx context.Context, p physician.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shiftDays, err := json.Marshal(p.ShiftDays)
	if err != nil {
		return fmt.Errorf("failed to encode shift days: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO profiles (
			id, name, start_date, leave_days,
			status_fte, non_clinical_fte, other_dept_fte,
			academic_rank, shift_days_json, graduation_year,
			addiction_board_certified, other_stipend, autofill_direct_care,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			start_date = excluded.start_date,
			leave_days = excluded.leave_days,
			status_fte = excluded.status_fte,
			non_clinical_fte = excluded.non_clinical_fte,
			other_dept_fte = excluded.other_dept_fte,
			academic_rank = excluded.academic_rank,
			shift_days_json = excluded.shift_days_json,
			graduation_year = excluded.graduation_year,
			addiction_board_certified = excluded.addiction_board_certified,
			other_stipend = excluded.other_stipend,
			autofill_direct_care = excluded.autofill_direct_care,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.StartDate, p.LeaveDays,
		p.StatusFTE, p.NonClinicalFTE, p.OtherDeptFTE,
		p.AcademicRank, string(shiftDays), p.GraduationYear,
		boolToInt(p.AddictionBoardCertified), p.OtherStipend, boolToInt(p.AutofillDirectCare),
		now, now,
	)
	return err
}

// GetProfile retrieves a profile by ID.
func (s *Store) GetProfile(ctx context.Context, id string) (*physician.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, selectProfile+` WHERE id = ?`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListProfiles returns all profiles ordered by name.
func (s *Store) ListProfiles(ctx context.Context) ([]physician.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, selectProfile+` ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []physician.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a profile.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset removes all profiles (dev/test only).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM profiles`)
	return err
}

// =============================================================================
// SCANNING
// =============================================================================

const selectProfile = `
	SELECT id, name, start_date, leave_days,
	       status_fte, non_clinical_fte, other_dept_fte,
	       academic_rank, shift_days_json, graduation_year,
	       addiction_board_certified, other_stipend, autofill_direct_care,
	       created_at, updated_at
	FROM profiles`

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner) (*physician.Profile, error) {
	var (
		p                  physician.Profile
		shiftDaysJSON      string
		boardCertified     int
		autofillDirectCare int
		createdAt          string
		updatedAt          string
	)

	err := row.Scan(
		&p.ID, &p.Name, &p.StartDate, &p.LeaveDays,
		&p.StatusFTE, &p.NonClinicalFTE, &p.OtherDeptFTE,
		&p.AcademicRank, &shiftDaysJSON, &p.GraduationYear,
		&boardCertified, &p.OtherStipend, &autofillDirectCare,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(shiftDaysJSON), &p.ShiftDays); err != nil {
		return nil, fmt.Errorf("failed to decode shift days: %w", err)
	}
	p.AddictionBoardCertified = boardCertified != 0
	p.AutofillDirectCare = autofillDirectCare != 0

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		p.UpdatedAt = t
	}

	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
