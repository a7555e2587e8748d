// Package sqlite provides a SQLite-backed reference table store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	sqlitemigrate "github.com/louisbranch/covidtracker/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"github.com/louisbranch/covidtracker/internal/services/survival/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store serves reference lookups from SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ reference.Source = (*Store)(nil)

// Open opens a SQLite reference store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Import replaces both tables with dataset in one transaction. Importing the
// same dataset twice leaves the store unchanged.
func (s *Store) Import(ctx context.Context, dataset reference.Dataset) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"age_sex_state_deaths", "condition_deaths"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	demographics, err := tx.PrepareContext(ctx, `INSERT INTO age_sex_state_deaths (age_group, state, sex, deaths) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare age/sex/state insert: %w", err)
	}
	defer demographics.Close()
	for _, row := range dataset.AgeSexState {
		if _, err = demographics.ExecContext(ctx, row.AgeGroup, row.State, row.Sex, row.Deaths); err != nil {
			return fmt.Errorf("insert age/sex/state row: %w", err)
		}
	}

	conditions, err := tx.PrepareContext(ctx, `INSERT INTO condition_deaths (age_group, state, condition_group, deaths) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare condition insert: %w", err)
	}
	defer conditions.Close()
	for _, row := range dataset.Conditions {
		if _, err = conditions.ExecContext(ctx, row.AgeGroup, row.State, row.ConditionGroup, row.Deaths); err != nil {
			return fmt.Errorf("insert condition row: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		if isBusy(err) {
			return fmt.Errorf("commit import: database is locked: %w", err)
		}
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// Dataset returns every stored row in import order.
func (s *Store) Dataset(ctx context.Context) (reference.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return reference.Dataset{}, err
	}
	if s == nil || s.sqlDB == nil {
		return reference.Dataset{}, fmt.Errorf("storage is not configured")
	}

	var dataset reference.Dataset
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT age_group, state, sex, deaths FROM age_sex_state_deaths ORDER BY row_id`)
	if err != nil {
		return reference.Dataset{}, fmt.Errorf("list age/sex/state rows: %w", err)
	}
	for rows.Next() {
		var row reference.AgeSexStateRecord
		if err := rows.Scan(&row.AgeGroup, &row.State, &row.Sex, &row.Deaths); err != nil {
			_ = rows.Close()
			return reference.Dataset{}, fmt.Errorf("scan age/sex/state row: %w", err)
		}
		dataset.AgeSexState = append(dataset.AgeSexState, row)
	}
	if err := closeRows(rows); err != nil {
		return reference.Dataset{}, fmt.Errorf("list age/sex/state rows: %w", err)
	}

	rows, err = s.sqlDB.QueryContext(ctx, `SELECT age_group, state, condition_group, deaths FROM condition_deaths ORDER BY row_id`)
	if err != nil {
		return reference.Dataset{}, fmt.Errorf("list condition rows: %w", err)
	}
	for rows.Next() {
		var row reference.ConditionRecord
		if err := rows.Scan(&row.AgeGroup, &row.State, &row.ConditionGroup, &row.Deaths); err != nil {
			_ = rows.Close()
			return reference.Dataset{}, fmt.Errorf("scan condition row: %w", err)
		}
		dataset.Conditions = append(dataset.Conditions, row)
	}
	if err := closeRows(rows); err != nil {
		return reference.Dataset{}, fmt.Errorf("list condition rows: %w", err)
	}
	return dataset, nil
}

// DemographicDeaths implements reference.Source.
func (s *Store) DemographicDeaths(ctx context.Context, ageGroup, state, sex string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var (
		matches int
		deaths  sql.NullInt64
	)
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COUNT(*), MAX(deaths) FROM age_sex_state_deaths WHERE age_group = ? AND state = ? AND sex = ?`,
		ageGroup, state, sex,
	).Scan(&matches, &deaths)
	if err != nil {
		return 0, fmt.Errorf("get demographic deaths: %w", err)
	}
	switch matches {
	case 0:
		return 0, reference.NotFound(ageGroup, state, sex)
	case 1:
		return deaths.Int64, nil
	default:
		return 0, reference.Ambiguous(ageGroup, state, sex, matches)
	}
}

// ConditionDeaths implements reference.Source.
func (s *Store) ConditionDeaths(ctx context.Context, ageGroup, stateCode, conditionGroup string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var deaths int64
	err := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT COALESCE(SUM(deaths), 0) FROM condition_deaths WHERE age_group = ? AND state = ? AND condition_group = ?`,
		ageGroup, stateCode, conditionGroup,
	).Scan(&deaths)
	if err != nil {
		return 0, fmt.Errorf("sum condition deaths: %w", err)
	}
	return deaths, nil
}

func closeRows(rows *sql.Rows) error {
	iterErr := rows.Err()
	closeErr := rows.Close()
	return errors.Join(iterErr, closeErr)
}

func isBusy(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_BUSY, sqlite3lib.SQLITE_LOCKED:
			return true
		}
	}
	return false
}
