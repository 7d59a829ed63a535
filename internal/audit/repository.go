package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeSearch Mode = "search"
)

// View records that an entry was printed. Field values are never stored.
// ViewedAt is kept as unix nanoseconds so rows order by time.
type View struct {
	Session  string
	Mode     Mode
	Database string
	Path     string
	Title    string
	ViewedAt time.Time
}

type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS entry_views (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  session TEXT NOT NULL,
  mode TEXT NOT NULL,
  database_path TEXT NOT NULL,
  group_path TEXT NOT NULL,
  title TEXT NOT NULL,
  viewed_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entry_views_viewed_at ON entry_views(viewed_at);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) RecordView(ctx context.Context, v View) error {
	if v.ViewedAt.IsZero() {
		v.ViewedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO entry_views (session, mode, database_path, group_path, title, viewed_at)
VALUES (?, ?, ?, ?, ?, ?)
`,
		v.Session,
		string(v.Mode),
		v.Database,
		v.Path,
		v.Title,
		v.ViewedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("record view of %q: %w", v.Title, err)
	}
	return nil
}

// ListViews returns the most recent views first.
func (r *Repository) ListViews(ctx context.Context, limit int) ([]View, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT session, mode, database_path, group_path, title, viewed_at
FROM entry_views
ORDER BY viewed_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query views: %w", err)
	}
	defer rows.Close()

	views := make([]View, 0, limit)
	for rows.Next() {
		var v View
		var mode string
		var viewedAt int64
		if err := rows.Scan(
			&v.Session,
			&mode,
			&v.Database,
			&v.Path,
			&v.Title,
			&viewedAt,
		); err != nil {
			return nil, fmt.Errorf("scan view: %w", err)
		}
		v.Mode = Mode(mode)
		v.ViewedAt = time.Unix(0, viewedAt).UTC()
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return views, nil
}

// CheckWritable fails early when the audit file cannot be written.
func (r *Repository) CheckWritable(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_views WHERE 0`); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	return nil
}
