package quota

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/adonai-ai/server/adonai/profiles"
	"github.com/adonai-ai/server/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements ProfileCounters for testing
type mockProfileCounters struct {
	counter    profiles.Counter
	counterErr error

	setUserID string
	setCount  int
	setDate   string
	setErr    error
}

func (m *mockProfileCounters) Counter(_ context.Context, _ string) (profiles.Counter, error) {
	return m.counter, m.counterErr
}

func (m *mockProfileCounters) SetCounter(_ context.Context, userID string, count int, date string) error {
	m.setUserID = userID
	m.setCount = count
	m.setDate = date

	return m.setErr
}

// implements AnonymousCounters for testing
type mockAnonymousCounters struct {
	count    int
	countErr error

	incrementedIP   string
	incrementedDate string
	incrementErr    error
}

func (m *mockAnonymousCounters) Count(_ context.Context, _, _ string) (int, error) {
	return m.count, m.countErr
}

func (m *mockAnonymousCounters) Increment(_ context.Context, ip, date string) error {
	m.incrementedIP = ip
	m.incrementedDate = date

	return m.incrementErr
}

const testDay = Period("2026-08-30")

func identified(userID string) auth.Identity {
	return auth.Identity{State: auth.Identified, UserID: userID}
}

func anonymous() auth.Identity {
	return auth.Identity{State: auth.Anonymous}
}

func TestToday_UTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*3600)
	now := time.Date(2026, 8, 30, 23, 30, 0, 0, loc)

	assert.Equal(t, Period("2026-08-31"), Today(now))
}

func TestCheck_UnderLimit(t *testing.T) {
	for count := 0; count < 10; count++ {
		svc := NewService(
			&mockProfileCounters{counter: profiles.Counter{Tier: "free", Count: count, Date: testDay.String()}},
			&mockAnonymousCounters{},
			DefaultPolicy(),
		)

		status := svc.Check(context.Background(), identified("user-1"), "", testDay)

		assert.False(t, status.Limited, "count=%d", count)
		assert.Equal(t, 10-count, status.Remaining, "count=%d", count)
		assert.Equal(t, count, status.Used)
	}
}

func TestCheck_AtLimit(t *testing.T) {
	svc := NewService(
		&mockProfileCounters{counter: profiles.Counter{Tier: "free", Count: 10, Date: testDay.String()}},
		&mockAnonymousCounters{},
		DefaultPolicy(),
	)

	status := svc.Check(context.Background(), identified("user-1"), "", testDay)

	assert.True(t, status.Limited)
	assert.Equal(t, 0, status.Remaining)
	assert.Equal(t, 10, status.Used)
	assert.Equal(t, 10, status.Limit)
}

func TestCheck_StaleDateReadsAsZero(t *testing.T) {
	svc := NewService(
		&mockProfileCounters{counter: profiles.Counter{Tier: "free", Count: 10, Date: "2026-08-29"}},
		&mockAnonymousCounters{},
		DefaultPolicy(),
	)

	status := svc.Check(context.Background(), identified("user-1"), "", testDay)

	assert.False(t, status.Limited, "yesterday's count must not limit today")
	assert.Equal(t, 10, status.Remaining)
	assert.Equal(t, 0, status.Used)
}

func TestCheck_PremiumUnlimited(t *testing.T) {
	for _, tier := range []string{"premium", "admin"} {
		svc := NewService(
			&mockProfileCounters{counter: profiles.Counter{Tier: tier, Count: 9999, Date: testDay.String()}},
			&mockAnonymousCounters{},
			DefaultPolicy(),
		)

		status := svc.Check(context.Background(), identified("user-1"), "", testDay)

		assert.False(t, status.Limited, "tier=%s", tier)
		assert.True(t, status.Unlimited)
		assert.Equal(t, UnlimitedRemaining, status.Remaining)
	}
}

func TestCheck_AnonymousAtLimit(t *testing.T) {
	svc := NewService(
		&mockProfileCounters{},
		&mockAnonymousCounters{count: 10},
		DefaultPolicy(),
	)

	status := svc.Check(context.Background(), anonymous(), "203.0.113.7", testDay)

	assert.True(t, status.Limited)
	assert.Equal(t, 10, status.Used)
}

func TestCheck_StoreErrorFailOpen(t *testing.T) {
	svc := NewService(
		&mockProfileCounters{counterErr: fmt.Errorf("connection refused")},
		&mockAnonymousCounters{countErr: fmt.Errorf("connection refused")},
		DefaultPolicy(),
	)

	for _, id := range []auth.Identity{identified("user-1"), anonymous()} {
		status := svc.Check(context.Background(), id, "203.0.113.7", testDay)

		assert.False(t, status.Limited, "fail-open must allow the request")
		assert.True(t, status.Unlimited)
		assert.Equal(t, UnlimitedRemaining, status.Remaining)
	}
}

func TestCheck_StoreErrorFailClosed(t *testing.T) {
	policy := DefaultPolicy()
	policy.FailMode = FailClosed

	svc := NewService(
		&mockProfileCounters{counterErr: fmt.Errorf("connection refused")},
		&mockAnonymousCounters{},
		policy,
	)

	status := svc.Check(context.Background(), identified("user-1"), "", testDay)

	assert.True(t, status.Limited)
}

func TestCheck_MissingProfileReadsAsZero(t *testing.T) {
	// the repository maps a missing row to a fresh free-tier counter
	svc := NewService(
		&mockProfileCounters{counter: profiles.Counter{Tier: "free"}},
		&mockAnonymousCounters{},
		DefaultPolicy(),
	)

	status := svc.Check(context.Background(), identified("user-1"), "", testDay)

	assert.False(t, status.Limited)
	assert.Equal(t, 10, status.Remaining)
}

func TestRecord_SameDayIncrementsByOne(t *testing.T) {
	store := &mockProfileCounters{counter: profiles.Counter{Tier: "free", Count: 4, Date: testDay.String()}}
	svc := NewService(store, &mockAnonymousCounters{}, DefaultPolicy())

	err := svc.Record(context.Background(), identified("user-1"), "", testDay)

	require.NoError(t, err)
	assert.Equal(t, 5, store.setCount)
	assert.Equal(t, testDay.String(), store.setDate)
	assert.Equal(t, "user-1", store.setUserID)
}

func TestRecord_NewDayResetsToOne(t *testing.T) {
	store := &mockProfileCounters{counter: profiles.Counter{Tier: "free", Count: 10, Date: "2026-08-29"}}
	svc := NewService(store, &mockAnonymousCounters{}, DefaultPolicy())

	err := svc.Record(context.Background(), identified("user-1"), "", testDay)

	require.NoError(t, err)
	assert.Equal(t, 1, store.setCount, "a count from a prior day resets to 1, never increments")
	assert.Equal(t, testDay.String(), store.setDate)
}

func TestRecord_AnonymousDelegatesToStore(t *testing.T) {
	store := &mockAnonymousCounters{}
	svc := NewService(&mockProfileCounters{}, store, DefaultPolicy())

	err := svc.Record(context.Background(), anonymous(), "203.0.113.7", testDay)

	require.NoError(t, err)
	assert.Equal(t, "203.0.113.7", store.incrementedIP)
	assert.Equal(t, testDay.String(), store.incrementedDate)
}

func TestRecord_StoreErrorReturned(t *testing.T) {
	svc := NewService(
		&mockProfileCounters{counterErr: fmt.Errorf("connection refused")},
		&mockAnonymousCounters{},
		DefaultPolicy(),
	)

	err := svc.Record(context.Background(), identified("user-1"), "", testDay)

	assert.Error(t, err, "record errors surface to the caller, which logs and continues")
}
