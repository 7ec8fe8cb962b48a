package checkins

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/checkins/daily"
	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/checkins/weekly"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=status_mocks_test.go -package=checkins

type weeklyCheckins interface {
	ThisWeek(ctx context.Context, userID string, now time.Time) ([]weekly.CheckinRecord, error)
}

type dailyCheckins interface {
	Today(ctx context.Context, userID string, now time.Time) ([]daily.DailyCheckinRecord, error)
}

type reminderStore interface {
	Dismiss(ctx context.Context, userID string, now time.Time) error
	DismissedAt(ctx context.Context, userID string, now time.Time) (*time.Time, error)
}

// StatusService computes the eligibility status of a user from stored check-ins.
type StatusService struct {
	weekly    weeklyCheckins
	daily     dailyCheckins
	reminders reminderStore
}

func NewStatusService(weekly weeklyCheckins, daily dailyCheckins, reminders reminderStore) *StatusService {
	return &StatusService{
		weekly:    weekly,
		daily:     daily,
		reminders: reminders,
	}
}

func (s *StatusService) Status(ctx context.Context, userID string, now time.Time) (_ *eligibility.Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.status")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	thisWeek, err := s.weekly.ThisWeek(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("weekly check-ins: %w", err)
	}
	today, err := s.daily.Today(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("daily check-ins: %w", err)
	}
	dismissedAt, err := s.reminders.DismissedAt(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("reminder dismissal: %w", err)
	}

	status := eligibility.NewStatus(now, weekly.Dates(thisWeek), daily.Dates(today), dismissedAt)
	return &status, nil
}

func (s *StatusService) DismissReminder(ctx context.Context, userID string, now time.Time) error {
	return s.reminders.Dismiss(ctx, userID, now)
}
