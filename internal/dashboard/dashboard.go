package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/auth"
	"github.com/2beens/fitcoach/internal/checkins/aggregation"
	"github.com/2beens/fitcoach/internal/checkins/daily"
	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/checkins/weekly"
	"github.com/2beens/fitcoach/internal/goals"
	"github.com/2beens/fitcoach/internal/progress"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
	"github.com/2beens/fitcoach/internal/visibility"
)

const (
	recentWeeks = 4
	recentDays  = 7
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard

type visibilitySource interface {
	Settings(ctx context.Context, clientID string) (*visibility.Settings, error)
}

type goalsSource interface {
	Get(ctx context.Context, userID string) (*goals.DailyGoalSet, error)
}

type statusSource interface {
	Status(ctx context.Context, userID string, now time.Time) (*eligibility.Status, error)
}

type weeklySource interface {
	List(ctx context.Context, userID string) ([]weekly.CheckinRecord, error)
}

type dailySource interface {
	List(ctx context.Context, userID string, from, to time.Time) ([]daily.DailyCheckinRecord, error)
}

type progressSource interface {
	Monthly(ctx context.Context, userID string, periodMonths int, now time.Time) (*progress.Monthly, error)
}

// Dashboard is everything the client home screen shows. Sections hidden by the
// client's visibility settings are left out when the client itself is looking.
type Dashboard struct {
	UserID         string                                        `json:"userId"`
	Visibility     visibility.Settings                           `json:"visibility"`
	Eligibility    *eligibility.Status                           `json:"eligibility"`
	Goals          []goals.Goal                                  `json:"goals,omitempty"`
	WeeklyCheckins []aggregation.WeekGroup[weekly.CheckinRecord] `json:"weeklyCheckins,omitempty"`
	DailyCheckins  []daily.DailyCheckinRecord                    `json:"dailyCheckins,omitempty"`
	Progress       *progress.Monthly                             `json:"progress,omitempty"`
}

type Service struct {
	visibility visibilitySource
	goals      goalsSource
	status     statusSource
	weekly     weeklySource
	daily      dailySource
	progress   progressSource
}

func NewService(
	visibility visibilitySource,
	goals goalsSource,
	status statusSource,
	weekly weeklySource,
	daily dailySource,
	progress progressSource,
) *Service {
	return &Service{
		visibility: visibility,
		goals:      goals,
		status:     status,
		weekly:     weekly,
		daily:      daily,
		progress:   progress,
	}
}

func (s *Service) Get(ctx context.Context, session *auth.Session, userID string, now time.Time) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.dashboard.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings, err := s.visibility.Settings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("visibility: %w", err)
	}
	show := *settings
	if session.IsCoach() {
		show = visibility.Defaults(userID)
	}

	d := &Dashboard{
		UserID:     userID,
		Visibility: *settings,
	}

	if d.Eligibility, err = s.status.Status(ctx, userID, now); err != nil {
		return nil, fmt.Errorf("eligibility: %w", err)
	}

	if show.ShowWeeklyGoals {
		set, err := s.goals.Get(ctx, userID)
		switch {
		case err == nil:
			d.Goals = set.Goals()
		case errors.Is(err, goals.ErrGoalsNotSet):
		default:
			return nil, fmt.Errorf("goals: %w", err)
		}
	}

	if show.ShowWeeklyCheckins {
		records, err := s.weekly.List(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("weekly check-ins: %w", err)
		}
		groups := aggregation.GroupByWeek(records, time.Sunday, now.Location())
		if len(groups) > recentWeeks {
			groups = groups[:recentWeeks]
		}
		d.WeeklyCheckins = groups
	}

	if show.ShowDailyCheckins {
		to := eligibility.StartOfDay(now).AddDate(0, 0, 1)
		records, err := s.daily.List(ctx, userID, to.AddDate(0, 0, -recentDays), to)
		if err != nil {
			return nil, fmt.Errorf("daily check-ins: %w", err)
		}
		d.DailyCheckins = records
	}

	if show.ShowProgressGraph {
		if d.Progress, err = s.progress.Monthly(ctx, userID, progress.DefaultPeriodMonths, now); err != nil {
			return nil, fmt.Errorf("progress: %w", err)
		}
	}

	return d, nil
}
