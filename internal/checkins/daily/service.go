package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=daily

type checkinsRepo interface {
	Add(ctx context.Context, record DailyCheckinRecord) (*DailyCheckinRecord, error)
	Get(ctx context.Context, id string) (*DailyCheckinRecord, error)
	ListByUser(ctx context.Context, userID string, from, to time.Time) ([]DailyCheckinRecord, error)
	Update(ctx context.Context, record DailyCheckinRecord) error
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo           checkinsRepo
	metricsManager *metrics.Manager
}

func NewService(repo checkinsRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (s *Service) List(ctx context.Context, userID string, from, to time.Time) ([]DailyCheckinRecord, error) {
	return s.repo.ListByUser(ctx, userID, from, to)
}

// Today returns the user's check-ins of now's calendar day.
func (s *Service) Today(ctx context.Context, userID string, now time.Time) ([]DailyCheckinRecord, error) {
	from := eligibility.StartOfDay(now)
	return s.repo.ListByUser(ctx, userID, from, from.AddDate(0, 0, 1))
}

// Submit turns a valid draft into a check-in dated now, at most one per calendar day.
func (s *Service) Submit(ctx context.Context, userID string, draft Draft, now time.Time) (_ *DailyCheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.daily.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := draft.Validate(); err != nil {
		return nil, err
	}

	today, err := s.Today(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("list today check-ins: %w", err)
	}
	if !eligibility.CanSubmitDaily(now, Dates(today)) {
		return nil, ErrAlreadySubmittedToday
	}

	record := DailyCheckinRecord{
		UserID:         userID,
		Date:           now,
		CompletedGoals: MergeGoals(nil, draft.Goals),
		Notes:          draft.Notes,
		ImageURLs:      draft.ImageURLs,
		Timestamp:      now,
	}

	added, err := s.repo.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("add daily check-in: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCheckinsSubmitted.WithLabelValues("daily").Inc()
	}
	return added, nil
}

func (s *Service) Edit(ctx context.Context, userID, id string, patch Patch, now time.Time) (_ *DailyCheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.daily.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := patch.Apply(record); err != nil {
		return nil, err
	}
	record.EditedAt = &now
	if err := s.repo.Update(ctx, *record); err != nil {
		return nil, fmt.Errorf("update daily check-in: %w", err)
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.daily.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) owned(ctx context.Context, userID, id string) (*DailyCheckinRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrNotOwner
	}
	return record, nil
}
