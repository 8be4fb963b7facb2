package profiles

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProfileNotFound = errors.New("profile not found")

// creates a new profile repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// fetches a profile by user ID
func (r *Repository) Get(ctx context.Context, userID string) (*Profile, error) {
	var p Profile

	err := r.db.QueryRow(ctx, queryGet, userID).Scan(
		&p.ID,
		&p.Email,
		&p.DisplayName,
		&p.AvatarURL,
		&p.Tier,
		&p.DailyQuestionCount,
		&p.LastQuestionDate,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return &p, nil
}

// updates a profile's display name
func (r *Repository) UpdateDisplayName(ctx context.Context, userID, displayName string) error {
	tag, err := r.db.Exec(ctx, queryUpdateDisplayName, displayName, userID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

// fetches the quota counter for a user. A missing profile reads as a fresh
// free-tier counter rather than an error, so quota checks stay permissive
// for accounts whose profile row has not been provisioned yet.
func (r *Repository) Counter(ctx context.Context, userID string) (Counter, error) {
	var c Counter

	err := r.db.QueryRow(ctx, queryGetCounter, userID).Scan(&c.Tier, &c.Count, &c.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Counter{Tier: "free"}, nil
		}

		return Counter{}, err
	}

	return c, nil
}

// stores the counter value and the date it belongs to
func (r *Repository) SetCounter(ctx context.Context, userID string, count int, date string) error {
	_, err := r.db.Exec(ctx, querySetCounter, count, date, userID)
	return err
}
