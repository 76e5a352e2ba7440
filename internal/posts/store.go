package posts

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"bloggen/internal/config"
	"bloggen/internal/outline"
)

//go:embed schema.sql
var schemaSQL string

// Store manages article persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Row is one article pending insertion.
type Row struct {
	CreatedAt time.Time
	Title     string
	Content   string
	Category  string
}

// Post is one persisted article.
type Post struct {
	ID        int64
	CreatedAt string
	Title     string
	Category  string
}

// Open initializes or connects to the posts database and ensures the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// ExistingKeys returns every (title, category) pair already persisted.
func (s *Store) ExistingKeys(ctx context.Context) (map[outline.Key]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT title, category FROM posts")
	if err != nil {
		return nil, fmt.Errorf("query existing keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[outline.Key]struct{})
	for rows.Next() {
		var key outline.Key
		if err := rows.Scan(&key.Title, &key.Category); err != nil {
			return nil, fmt.Errorf("scan existing key: %w", err)
		}
		keys[key] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate existing keys: %w", err)
	}
	return keys, nil
}

// InsertBatch persists the rows in a single transaction with INSERT OR IGNORE
// semantics and returns the number of rows actually added. Rows whose
// (title, category) already exists are silently dropped.
func (s *Store) InsertBatch(ctx context.Context, batch []Row) (int64, error) {
	if len(batch) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin batch tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO posts(created_at, title, content, category) VALUES(?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	var added int64
	for _, row := range batch {
		res, err := stmt.ExecContext(ctx,
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.Title,
			row.Content,
			row.Category,
		)
		if err != nil {
			return 0, fmt.Errorf("insert post %q: %w", row.Title, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected: %w", err)
		}
		added += affected
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit batch: %w", err)
	}
	return added, nil
}

// Count returns the total number of persisted articles.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM posts").Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

// ListRecent returns the newest articles first, capped at limit.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, created_at, title, category FROM posts ORDER BY created_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query recent posts: %w", err)
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.CreatedAt, &post.Title, &post.Category); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return out, nil
}
