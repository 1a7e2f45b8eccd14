package usage

import (
	"context"
	"time"

	"atsmatch-backend/internal/plans"
	"atsmatch-backend/internal/shared/telemetry"
)

// Service decides whether an analysis request may proceed and records
// consumption afterwards.
//
// The check and the eventual Record call are not atomic: two concurrent
// requests near the quota boundary can both pass the check before either
// writes its event. The quota is a soft bound; strict enforcement would
// need an atomic increment-and-check at the store layer.
type Service struct {
	Repo Repo

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

// NewService constructs a Service over the given repo.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: time.Now}
}

// MayProceed reports whether the user's plan tier permits another analysis
// right now. Quota windows use local calendar boundaries: midnight for the
// daily window, the 1st of the month for the monthly window. Store failures
// fail closed.
func (s *Service) MayProceed(ctx context.Context, userID string, tier plans.Tier) bool {
	ent := plans.Resolve(tier)

	if ent.DailyQuota != plans.Unlimited {
		count, err := s.Repo.CountSince(ctx, userID, ActionAnalyze, s.startOfDay())
		if err != nil {
			telemetry.Error("usage.count_failed", map[string]any{"user_id": userID, "window": "day", "error": err.Error()})
			return false
		}
		if count >= ent.DailyQuota {
			return false
		}
	}

	if ent.MonthlyQuota != plans.Unlimited {
		count, err := s.Repo.CountSince(ctx, userID, ActionAnalyze, s.startOfMonth())
		if err != nil {
			telemetry.Error("usage.count_failed", map[string]any{"user_id": userID, "window": "month", "error": err.Error()})
			return false
		}
		if count >= ent.MonthlyQuota {
			return false
		}
	}

	return true
}

// RecordAnalyze appends one "analyze" event for the user.
func (s *Service) RecordAnalyze(ctx context.Context, userID string) error {
	return s.Repo.Record(ctx, Event{
		UserID:    userID,
		Action:    ActionAnalyze,
		CreatedAt: s.now().UTC(),
	})
}

// GetStats returns today's and this month's analyze counts.
func (s *Service) GetStats(ctx context.Context, userID string) (Stats, error) {
	today, err := s.Repo.CountSince(ctx, userID, ActionAnalyze, s.startOfDay())
	if err != nil {
		return Stats{}, err
	}
	month, err := s.Repo.CountSince(ctx, userID, ActionAnalyze, s.startOfMonth())
	if err != nil {
		return Stats{}, err
	}
	return Stats{TodayUsage: today, MonthlyUsage: month}, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) startOfDay() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *Service) startOfMonth() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}
