package quota

import (
	"context"
	"fmt"

	"github.com/adonai-ai/server/internal/auth"
	"github.com/adonai-ai/server/internal/logger"
)

// Service decides whether a caller may issue one more completion request in
// the current period, and records consumption after a successful completion.
type Service struct {
	profiles  ProfileCounters
	anonymous AnonymousCounters
	policy    Policy
}

func NewService(profiles ProfileCounters, anonymous AnonymousCounters, policy Policy) *Service {
	return &Service{
		profiles:  profiles,
		anonymous: anonymous,
		policy:    policy,
	}
}

func (s *Service) Policy() Policy {
	return s.policy
}

// Check reports whether the caller identified by id (or, when anonymous, by
// ip) has quota left for the period. Counters stored under a different date
// read as zero. Store failures are resolved by the policy's fail mode.
func (s *Service) Check(ctx context.Context, id auth.Identity, ip string, p Period) Status {
	if id.Authenticated() {
		return s.checkAuthenticated(ctx, id.UserID, p)
	}

	return s.checkAnonymous(ctx, ip, p)
}

func (s *Service) checkAuthenticated(ctx context.Context, userID string, p Period) Status {
	counter, err := s.profiles.Counter(ctx, userID)
	if err != nil {
		return s.storeFailure(err, "user_id", userID)
	}

	if s.policy.unlimitedTier(counter.Tier) {
		return Status{Limit: s.policy.DailyLimit, Remaining: UnlimitedRemaining, Unlimited: true}
	}

	// a count recorded on a different date belongs to a prior day
	count := 0
	if counter.Date == p.String() {
		count = counter.Count
	}

	return s.status(count)
}

func (s *Service) checkAnonymous(ctx context.Context, ip string, p Period) Status {
	count, err := s.anonymous.Count(ctx, ip, p.String())
	if err != nil {
		return s.storeFailure(err, "ip", ip)
	}

	return s.status(count)
}

func (s *Service) status(count int) Status {
	remaining := s.policy.DailyLimit - count
	if remaining < 0 {
		remaining = 0
	}

	return Status{
		Limited:   count >= s.policy.DailyLimit,
		Limit:     s.policy.DailyLimit,
		Used:      count,
		Remaining: remaining,
	}
}

func (s *Service) storeFailure(err error, args ...any) Status {
	if s.policy.FailMode == FailClosed {
		logger.ErrorErr(err, "quota check failed, rejecting request", args...)
		return Status{Limited: true, Limit: s.policy.DailyLimit}
	}

	logger.ErrorErr(err, "quota check failed, allowing request", args...)

	return Status{Limit: s.policy.DailyLimit, Remaining: UnlimitedRemaining, Unlimited: true}
}

// Record durably adds one question to the caller's counter for the period.
// Called only after a completion was produced and delivered. A counter
// stored under a different date is reset to 1 instead of incremented,
// because the prior count belongs to a different day.
func (s *Service) Record(ctx context.Context, id auth.Identity, ip string, p Period) error {
	if id.Authenticated() {
		counter, err := s.profiles.Counter(ctx, id.UserID)
		if err != nil {
			return fmt.Errorf("failed to read counter: %w", err)
		}

		newCount := 1
		if counter.Date == p.String() {
			newCount = counter.Count + 1
		}

		if err := s.profiles.SetCounter(ctx, id.UserID, newCount, p.String()); err != nil {
			return fmt.Errorf("failed to store counter: %w", err)
		}

		return nil
	}

	if err := s.anonymous.Increment(ctx, ip, p.String()); err != nil {
		return fmt.Errorf("failed to increment anonymous counter: %w", err)
	}

	return nil
}
