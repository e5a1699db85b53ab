// Package snippets stores shared refined code in a local SQLite database so
// a share link can be opened again later.
package snippets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/coderefine/coderefine/internal/config"
	perrors "github.com/coderefine/coderefine/internal/errors"
)

// DBFile is the database file name under config.Dir().
const DBFile = "snippets.db"

// timeLayout is fixed width so created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Snippet is one shared piece of code.
type Snippet struct {
	ID        string    `json:"id" yaml:"id"`
	Code      string    `json:"code" yaml:"code"`
	Language  string    `json:"language" yaml:"language"`
	Action    string    `json:"action,omitempty" yaml:"action,omitempty"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Link returns the snippet's share link.
func (s Snippet) Link() string {
	return Link(s.ID)
}

// Store is a SQLite-backed snippet store.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS snippets (
	id         TEXT PRIMARY KEY,
	code       TEXT NOT NULL,
	language   TEXT NOT NULL,
	action     TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS snippets_created_at ON snippets(created_at);`

// Open opens (or creates) the store at path.
// Use ":memory:" for an in-memory database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, perrors.E(perrors.Op("snippets.Open"), perrors.KindIO, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// A single connection keeps ":memory:" databases shared and serialises writes.
	db.SetMaxOpenConns(1)

	if path != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the store in the coderefine state directory.
func OpenDefault() (*Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, perrors.E(perrors.Op("snippets.OpenDefault"), perrors.KindConfig, err)
	}
	return Open(filepath.Join(dir, DBFile))
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new snippet, assigning its id and creation time.
func (s *Store) Create(ctx context.Context, code, language, action string) (Snippet, error) {
	if code == "" {
		return Snippet{}, perrors.NothingToExport(perrors.Op("snippets.Create"))
	}

	sn := Snippet{
		ID:        uuid.NewString(),
		Code:      code,
		Language:  language,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO snippets (id, code, language, action, created_at) VALUES (?, ?, ?, ?, ?)",
		sn.ID, sn.Code, sn.Language, sn.Action, sn.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Snippet{}, fmt.Errorf("insert snippet: %w", err)
	}
	return sn, nil
}

// Get returns the snippet with id.
func (s *Store) Get(ctx context.Context, id string) (Snippet, error) {
	var sn Snippet
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, code, language, action, created_at FROM snippets WHERE id = ?", id,
	).Scan(&sn.ID, &sn.Code, &sn.Language, &sn.Action, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Snippet{}, perrors.SnippetNotFound(id)
	}
	if err != nil {
		return Snippet{}, fmt.Errorf("get snippet %s: %w", id, err)
	}
	sn.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	return sn, nil
}

// Resolve parses a share link (or bare id) and returns its snippet.
func (s *Store) Resolve(ctx context.Context, link string) (Snippet, error) {
	id, err := ParseLink(link)
	if err != nil {
		return Snippet{}, err
	}
	return s.Get(ctx, id)
}

// List returns snippets newest first. limit <= 0 returns all of them.
func (s *Store) List(ctx context.Context, limit int) ([]Snippet, error) {
	query := "SELECT id, code, language, action, created_at FROM snippets ORDER BY created_at DESC, rowid DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	defer rows.Close()

	var out []Snippet
	for rows.Next() {
		var sn Snippet
		var createdAt string
		if err := rows.Scan(&sn.ID, &sn.Code, &sn.Language, &sn.Action, &createdAt); err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		sn.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		out = append(out, sn)
	}
	return out, rows.Err()
}

// Delete removes the snippet with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM snippets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snippet %s: %w", id, err)
	}
	if n == 0 {
		return perrors.SnippetNotFound(id)
	}
	return nil
}
