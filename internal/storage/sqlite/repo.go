package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"boost_site/internal/adapters/observability"
	"boost_site/internal/domain"
)

// Repo is the embedded alternative to the JSON snapshot store. SQLite
// serializes writers itself, so the exclusive-writer discipline comes for
// free here.
type Repo struct{ db *sql.DB }

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*Repo, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Repo{db: db}, nil
}

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, listReviewsSQL)
	observability.ObserveStore("sqlite", "list", err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Rating, &rv.Content, &rv.Service, &rv.Date); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *Repo) Insert(ctx context.Context, rv domain.Review) error {
	_, err := r.db.ExecContext(ctx, insertReviewSQL,
		rv.ID, rv.Author, rv.Rating, rv.Content, rv.Service, rv.Date)
	observability.ObserveStore("sqlite", "insert", err)
	return err
}

func (r *Repo) Delete(ctx context.Context, id string) (int, error) {
	res, err := r.db.ExecContext(ctx, deleteReviewSQL, id)
	observability.ObserveStore("sqlite", "delete", err)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (r *Repo) Close() error { return r.db.Close() }

var _ domain.ReviewStore = (*Repo)(nil)
