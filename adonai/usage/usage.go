package usage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new anonymous usage repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// returns the question count for an IP on a given date, 0 when no row exists
func (r *Repository) Count(ctx context.Context, ip, date string) (int, error) {
	var count int

	err := r.db.QueryRow(ctx, queryCount, ip, date).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return count, nil
}

// adds one question to the counter for an IP on a given date. Read-then-write:
// the store is not assumed to provide atomic increments, and quota is
// advisory, so a lost update under concurrent requests is tolerated.
func (r *Repository) Increment(ctx context.Context, ip, date string) error {
	var id string
	var count int

	err := r.db.QueryRow(ctx, queryFind, ip, date).Scan(&id, &count)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			_, err = r.db.Exec(ctx, queryInsert, ip, date)
			return err
		}

		return err
	}

	_, err = r.db.Exec(ctx, queryUpdate, count+1, id)
	return err
}
