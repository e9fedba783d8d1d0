package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chorus-search/chorus/internal/model"

	_ "modernc.org/sqlite"
)

const createSearchesTable = `
CREATE TABLE IF NOT EXISTS searches (
    id                 TEXT PRIMARY KEY,
    query              TEXT NOT NULL,
    category           TEXT NOT NULL,
    total_engines      INTEGER NOT NULL,
    successful_engines INTEGER NOT NULL,
    failed_engines     TEXT NOT NULL DEFAULT '[]',
    duration_ms        INTEGER NOT NULL,
    created_at         DATETIME NOT NULL
)`

// ErrNotFound is returned when a search record is not found.
var ErrNotFound = errors.New("search not found")

// Compile-time interface satisfaction check.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the SQLite database at dbPath and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if _, err := db.Exec(createSearchesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create searches table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Ping reports whether the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateSearch inserts a new search history record.
func (s *SQLiteStore) CreateSearch(ctx context.Context, rec *model.SearchRecord) error {
	failed, err := json.Marshal(rec.FailedEngines)
	if err != nil {
		return fmt.Errorf("marshal failed engines: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO searches (
			id, query, category, total_engines, successful_engines,
			failed_engines, duration_ms, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Query, rec.Category, rec.TotalEngines, rec.SuccessfulEngines,
		string(failed), rec.DurationMS, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert search: %w", err)
	}
	return nil
}

// GetSearch retrieves a search record by ID.
func (s *SQLiteStore) GetSearch(ctx context.Context, id string) (*model.SearchRecord, error) {
	rec := &model.SearchRecord{}
	var failed string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, query, category, total_engines, successful_engines,
			failed_engines, duration_ms, created_at
		FROM searches WHERE id = ?`, id,
	).Scan(
		&rec.ID, &rec.Query, &rec.Category, &rec.TotalEngines, &rec.SuccessfulEngines,
		&failed, &rec.DurationMS, &rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get search: %w", err)
	}

	if err := json.Unmarshal([]byte(failed), &rec.FailedEngines); err != nil {
		return nil, fmt.Errorf("unmarshal failed engines: %w", err)
	}
	return rec, nil
}

// ListSearches returns a paginated list of search records ordered by
// created_at DESC, along with the total count.
func (s *SQLiteStore) ListSearches(ctx context.Context, limit, offset int) ([]*model.SearchRecord, int, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM searches`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count searches: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, query, category, total_engines, successful_engines,
			failed_engines, duration_ms, created_at
		FROM searches ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list searches: %w", err)
	}
	defer rows.Close()

	var recs []*model.SearchRecord
	for rows.Next() {
		rec := &model.SearchRecord{}
		var failed string
		if err := rows.Scan(
			&rec.ID, &rec.Query, &rec.Category, &rec.TotalEngines, &rec.SuccessfulEngines,
			&failed, &rec.DurationMS, &rec.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan search: %w", err)
		}
		if err := json.Unmarshal([]byte(failed), &rec.FailedEngines); err != nil {
			return nil, 0, fmt.Errorf("unmarshal failed engines: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate searches: %w", err)
	}

	return recs, total, nil
}

// GetSearchStats computes aggregate statistics over the whole history.
func (s *SQLiteStore) GetSearchStats(ctx context.Context) (*SearchStats, error) {
	stats := &SearchStats{CountByCategory: make(map[string]int)}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(AVG(duration_ms), 0) FROM searches`,
	).Scan(&stats.Total, &stats.AvgDurationMS)
	if err != nil {
		return nil, fmt.Errorf("search totals: %w", err)
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COALESCE(AVG(CAST(successful_engines AS REAL) / total_engines), 0)
		FROM searches WHERE total_engines > 0`,
	).Scan(&stats.AvgSuccessRate)
	if err != nil {
		return nil, fmt.Errorf("success rate: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM searches GROUP BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		stats.CountByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category counts: %w", err)
	}

	return stats, nil
}
