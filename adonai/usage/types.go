package usage

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// handles anonymous usage counters, keyed by (ip_address, usage_date).
// One row per IP per day; created on first use, updated thereafter.
type Repository struct {
	db *pgxpool.Pool
}
