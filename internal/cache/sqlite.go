package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jfmyers9/spindle/pkg/webapi"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// SQLiteStore is a persistent response cache backed by SQLite
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
	now    func() time.Time
}

var _ webapi.CacheStore = (*SQLiteStore)(nil)

// BucketStats summarizes the entries of one bucket
type BucketStats struct {
	Bucket  string
	Entries int
	Bytes   int64
	Oldest  time.Time
	Newest  time.Time
}

// NewSQLiteStore opens (or creates) the cache database at dbPath
func NewSQLiteStore(dbPath string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases consistent and
	// serializes writers for file databases
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000", // Wait up to 10 seconds on lock
		"PRAGMA synchronous = NORMAL", // Balance between safety and performance
		"PRAGMA journal_mode = WAL",    // Write-Ahead Logging for concurrent access
		"PRAGMA temp_store = MEMORY",  // Use memory for temp tables
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS responses (
			bucket TEXT NOT NULL,
			key TEXT NOT NULL,
			data BLOB NOT NULL,
			modified INTEGER NOT NULL,
			PRIMARY KEY (bucket, key)
		);

		CREATE INDEX IF NOT EXISTS idx_modified ON responses(modified);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger.With().Str("component", "cache").Logger(),
		now:    time.Now,
	}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the cached body for bucket/key. Read failures are logged and
// reported as a miss.
func (s *SQLiteStore) Get(ctx context.Context, bucket, key string) (webapi.CacheEntry, bool) {
	query := `
		SELECT data, modified
		FROM responses
		WHERE bucket = ? AND key = ?
	`

	var entry webapi.CacheEntry
	var modified int64
	err := s.db.QueryRowContext(ctx, query, bucket, key).Scan(&entry.Data, &modified)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn().Err(err).Str("bucket", bucket).Str("key", key).Msg("Cache read failed")
		}
		return webapi.CacheEntry{}, false
	}

	entry.Modified = time.UnixMilli(modified)
	return entry, true
}

// Set stores data under bucket/key, replacing any previous entry
func (s *SQLiteStore) Set(ctx context.Context, bucket, key string, data []byte) error {
	query := `
		INSERT INTO responses (bucket, key, data, modified)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (bucket, key) DO UPDATE SET
			data = excluded.data,
			modified = excluded.modified
	`

	if _, err := s.db.ExecContext(ctx, query, bucket, key, data, s.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to store %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Delete removes a single entry
func (s *SQLiteStore) Delete(ctx context.Context, bucket, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM responses WHERE bucket = ? AND key = ?", bucket, key); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// Clear removes every entry of bucket, or of all buckets if bucket is empty
func (s *SQLiteStore) Clear(ctx context.Context, bucket string) (int64, error) {
	query := "DELETE FROM responses"
	var args []any
	if bucket != "" {
		query += " WHERE bucket = ?"
		args = append(args, bucket)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to clear cache: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// Prune removes entries written more than maxAge ago. Reads never consult
// the age of an entry; this is only for keeping the database small.
func (s *SQLiteStore) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := s.now().Add(-maxAge).UnixMilli()

	result, err := s.db.ExecContext(ctx, "DELETE FROM responses WHERE modified < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

// Stats returns per-bucket statistics ordered by bucket name
func (s *SQLiteStore) Stats(ctx context.Context) ([]BucketStats, error) {
	query := `
		SELECT bucket, COUNT(*), COALESCE(SUM(LENGTH(data)), 0), MIN(modified), MAX(modified)
		FROM responses
		GROUP BY bucket
		ORDER BY bucket ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache stats: %w", err)
	}
	defer rows.Close()

	var stats []BucketStats
	for rows.Next() {
		var b BucketStats
		var oldest, newest int64
		if err := rows.Scan(&b.Bucket, &b.Entries, &b.Bytes, &oldest, &newest); err != nil {
			return nil, fmt.Errorf("failed to scan cache stats: %w", err)
		}
		b.Oldest = time.UnixMilli(oldest)
		b.Newest = time.UnixMilli(newest)
		stats = append(stats, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cache stats: %w", err)
	}

	return stats, nil
}
