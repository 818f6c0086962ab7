package datastore

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/doccompare/internal/errorwrapper"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// UsageStore persists run history in a local SQLite database. Every batch
// run appends one row, which keeps a durable count of comparisons performed
// across invocations.
type UsageStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// RunRecord is one row in the run_history table.
type RunRecord struct {
	ID            int64
	RunTime       time.Time
	DocumentCount int
	PairCount     int
	ErrorCount    int
}

// NewUsageStore opens (or creates) the usage database and ensures the schema.
func NewUsageStore(dataSourceName string, logger zerolog.Logger) (*UsageStore, error) {
	componentLogger := logger.With().Str("component", "UsageStore").Logger()
	componentLogger.Info().Str("db_path", dataSourceName).Msg("Initializing usage database")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create usage database directory")
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to open usage database")
	}

	store := &UsageStore{
		db:     dbInstance,
		logger: componentLogger,
	}

	if err := store.InitSchema(); err != nil {
		store.Close()
		return nil, errorwrapper.WrapError(err, "failed to initialize usage schema")
	}

	return store, nil
}

// Close closes the database connection.
func (us *UsageStore) Close() error {
	if us.db != nil {
		return us.db.Close()
	}
	return nil
}

// InitSchema creates the run_history table if it doesn't already exist.
func (us *UsageStore) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS run_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_time DATETIME NOT NULL,
		document_count INTEGER NOT NULL,
		pair_count INTEGER NOT NULL,
		error_count INTEGER NOT NULL
	);`
	if _, err := us.db.Exec(query); err != nil {
		return errorwrapper.WrapError(err, "failed to create run_history table")
	}
	return nil
}

// RecordRun appends one run to the history.
func (us *UsageStore) RecordRun(documentCount, pairCount, errorCount int) error {
	query := `INSERT INTO run_history (run_time, document_count, pair_count, error_count) VALUES (?, ?, ?, ?)`
	_, err := us.db.Exec(query, time.Now().UTC(), documentCount, pairCount, errorCount)
	if err != nil {
		return errorwrapper.WrapError(err, "failed to record run")
	}
	return nil
}

// TotalComparisons returns the number of pair comparisons recorded across all runs.
func (us *UsageStore) TotalComparisons() (int64, error) {
	var total sql.NullInt64
	row := us.db.QueryRow(`SELECT SUM(pair_count) FROM run_history`)
	if err := row.Scan(&total); err != nil {
		return 0, errorwrapper.WrapError(err, "failed to sum pair counts")
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// RecentRuns returns up to limit runs, newest first.
func (us *UsageStore) RecentRuns(limit int) ([]RunRecord, error) {
	query := `SELECT id, run_time, document_count, pair_count, error_count
		FROM run_history ORDER BY run_time DESC, id DESC LIMIT ?`
	rows, err := us.db.Query(query, limit)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to query run history")
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var record RunRecord
		if err := rows.Scan(&record.ID, &record.RunTime, &record.DocumentCount, &record.PairCount, &record.ErrorCount); err != nil {
			return nil, errorwrapper.WrapError(err, "failed to scan run record")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to iterate run history")
	}
	return records, nil
}
