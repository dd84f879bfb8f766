package bookmark

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookmarks (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	path       TEXT NOT NULL UNIQUE,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Repository persists bookmarks in a local SQLite database
type Repository struct {
	db *sqlx.DB
}

// OpenRepository opens (creating if needed) the bookmark database.
// WAL with a busy timeout keeps concurrent browser tabs from tripping
// over each other on the single local file.
func OpenRepository(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", path)
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open bookmark db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init bookmark schema: %w", err)
	}
	return &Repository{db: db}, nil
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}

// List returns all bookmarks, newest first
func (r *Repository) List(ctx context.Context) ([]Bookmark, error) {
	bookmarks := []Bookmark{}
	err := r.db.SelectContext(ctx, &bookmarks,
		`SELECT id, name, path, created_at FROM bookmarks ORDER BY created_at DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Create inserts a bookmark
func (r *Repository) Create(ctx context.Context, b Bookmark) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarks (id, name, path, created_at) VALUES (?, ?, ?, ?)`,
		b.ID, b.Name, b.Path, b.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicate
		}
		return fmt.Errorf("create bookmark: %w", err)
	}
	return nil
}

// GetByID returns a single bookmark
func (r *Repository) GetByID(ctx context.Context, id string) (*Bookmark, error) {
	var b Bookmark
	err := r.db.GetContext(ctx, &b,
		`SELECT id, name, path, created_at FROM bookmarks WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get bookmark: %w", err)
	}
	return &b, nil
}

// Delete removes a bookmark by id
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
