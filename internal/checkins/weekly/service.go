package weekly

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/checkins/score"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=weekly

type checkinsRepo interface {
	Add(ctx context.Context, record CheckinRecord) (*CheckinRecord, error)
	Get(ctx context.Context, id string) (*CheckinRecord, error)
	ListByUser(ctx context.Context, userID string, since time.Time) ([]CheckinRecord, error)
	Update(ctx context.Context, record CheckinRecord) error
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

func (s *Service) List(ctx context.Context, userID string) ([]CheckinRecord, error) {
	return s.repo.ListByUser(ctx, userID, time.Time{})
}

// ThisWeek returns the user's check-ins of now's calendar week.
func (s *Service) ThisWeek(ctx context.Context, userID string, now time.Time) ([]CheckinRecord, error) {
	return s.repo.ListByUser(ctx, userID, eligibility.StartOfWeek(now))
}

// Submit stores a new weekly check-in dated now, at most one per calendar week.
func (s *Service) Submit(ctx context.Context, userID string, submission Submission, now time.Time) (_ *CheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.weekly.submit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	thisWeek, err := s.ThisWeek(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("list this week check-ins: %w", err)
	}
	if !eligibility.CanSubmitWeekly(now, Dates(thisWeek)) {
		return nil, ErrAlreadySubmittedThisWeek
	}

	if !submission.Ratings.Valid() {
		log.Warnf("weekly check-in of %s has ratings out of range: %+v", userID, submission.Ratings)
	}

	record := CheckinRecord{
		UserID:            userID,
		Date:              now,
		Name:              submission.Name,
		Weight:            submission.Weight,
		ImageURL:          submission.ImageURL,
		BiggestWin:        submission.BiggestWin,
		Issues:            submission.Issues,
		ExtraCoachRequest: submission.ExtraCoachRequest,
		Ratings:           submission.Ratings,
		FinalScore:        score.Compute(submission.Ratings),
	}

	added, err := s.repo.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("add check-in: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCheckinsSubmitted.WithLabelValues("weekly").Inc()
	}
	return added, nil
}

func (s *Service) Edit(ctx context.Context, userID, id string, patch Patch, now time.Time) (_ *CheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.weekly.edit")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(record)
	record.EditedAt = &now
	if err := s.repo.Update(ctx, *record); err != nil {
		return nil, fmt.Errorf("update check-in: %w", err)
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.checkins.weekly.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) owned(ctx context.Context, userID, id string) (*CheckinRecord, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.UserID != userID {
		return nil, ErrNotOwner
	}
	return record, nil
}
