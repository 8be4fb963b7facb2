package quota

import (
	"context"
	"time"

	"github.com/adonai-ai/server/adonai/profiles"
)

// Period is the calendar date (UTC, "YYYY-MM-DD") a counter belongs to.
// Computed once per request and passed down, so tests inject fixed dates
// instead of depending on wall-clock time.
type Period string

// returns the quota period for a point in time
func Today(now time.Time) Period {
	return Period(now.UTC().Format("2006-01-02"))
}

func (p Period) String() string {
	return string(p)
}

// FailMode names the policy applied when the counter store is unreachable.
type FailMode int

const (
	// FailOpen treats the caller as unlimited for the request and logs the
	// condition. Favors availability over strict enforcement.
	FailOpen FailMode = iota
	// FailClosed rejects the request when the counter store errors.
	FailClosed
)

// Policy holds the quota rules for a deployment.
type Policy struct {
	DailyLimit     int
	UnlimitedTiers []string
	FailMode       FailMode
}

// the production policy: 10 questions/day for free-tier and anonymous
// callers, no limit for premium and admin accounts, fail open
func DefaultPolicy() Policy {
	return Policy{
		DailyLimit:     10,
		UnlimitedTiers: []string{"premium", "admin"},
		FailMode:       FailOpen,
	}
}

func (p Policy) unlimitedTier(tier string) bool {
	for _, t := range p.UnlimitedTiers {
		if t == tier {
			return true
		}
	}

	return false
}

// remaining-quota sentinel reported for unlimited callers
const UnlimitedRemaining = 999

// Status is the outcome of a quota check.
type Status struct {
	Limited   bool
	Limit     int
	Used      int
	Remaining int
	Unlimited bool
}

// ProfileCounters reads and writes the per-account daily counter.
type ProfileCounters interface {
	Counter(ctx context.Context, userID string) (profiles.Counter, error)
	SetCounter(ctx context.Context, userID string, count int, date string) error
}

// AnonymousCounters reads and writes the per-IP daily counter.
type AnonymousCounters interface {
	Count(ctx context.Context, ip, date string) (int, error)
	Increment(ctx context.Context, ip, date string) error
}
