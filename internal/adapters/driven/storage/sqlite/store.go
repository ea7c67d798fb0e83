package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/tubescribe-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/tubescribe-cli/internal/core/domain"
	"github.com/custodia-labs/tubescribe-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SummaryStore = (*Store)(nil)

// Store is the SQLite-backed summary store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.tubescribe/data/summaries.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tubescribe", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "summaries.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection. Safe to call on a nil or
// never-opened store.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_summaries.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Upsert creates or replaces the summary for videoID in a single
// statement. CreatedAt is preserved on conflict, UpdatedAt always
// advances.
func (s *Store) Upsert(ctx context.Context, videoID, summary string) error {
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (video_id, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			summary = excluded.summary,
			updated_at = excluded.updated_at
	`, videoID, summary, now, now)

	if err != nil {
		return fmt.Errorf("upserting summary: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// Lookup retrieves the summary record for videoID, or (nil, nil) when no
// record exists.
func (s *Store) Lookup(ctx context.Context, videoID string) (*domain.SummaryRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT video_id, summary, created_at, updated_at
		FROM summaries WHERE video_id = ?
	`, videoID)

	var record domain.SummaryRecord
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&record.VideoID, &record.Summary, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning summary: %w: %w", domain.ErrPersistence, err)
	}

	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time
	}

	return &record, nil
}

// Remove deletes the summary record for videoID and reports whether a
// record existed.
func (s *Store) Remove(ctx context.Context, videoID string) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE video_id = ?", videoID)
	if err != nil {
		return false, fmt.Errorf("deleting summary: %w: %w", domain.ErrPersistence, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading affected rows: %w: %w", domain.ErrPersistence, err)
	}
	return affected > 0, nil
}
