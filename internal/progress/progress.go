package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/internal/checkins/aggregation"
	"github.com/2beens/fitcoach/internal/checkins/weekly"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const DefaultPeriodMonths = 6

type Metric string

const (
	MetricWeight Metric = "weight"
	MetricScore  Metric = "score"
)

var ErrUnknownMetric = errors.New("unknown metric")

func ParseMetric(s string) (Metric, error) {
	switch m := Metric(s); m {
	case MetricWeight, MetricScore:
		return m, nil
	case "":
		return MetricWeight, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMetric, s)
	}
}

// WeightObservation is a body weight reading taken from a weekly check-in.
type WeightObservation struct {
	Date     time.Time `json:"date"`
	Weight   float64   `json:"weight"`
	AuthorID string    `json:"authorId"`
}

type Monthly struct {
	Buckets []aggregation.MonthBucket `json:"buckets"`
	Summary aggregation.Summary       `json:"summary"`
}

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress

type checkinsLister interface {
	List(ctx context.Context, userID string) ([]weekly.CheckinRecord, error)
}

type Service struct {
	checkins checkinsLister
}

func NewService(checkins checkinsLister) *Service {
	return &Service{
		checkins: checkins,
	}
}

func Observations(records []weekly.CheckinRecord) []WeightObservation {
	observations := make([]WeightObservation, 0, len(records))
	for _, r := range records {
		if r.Weight <= 0 {
			continue
		}
		observations = append(observations, WeightObservation{
			Date:     r.Date,
			Weight:   r.Weight,
			AuthorID: r.UserID,
		})
	}
	return observations
}

// Monthly buckets the user's weight over the last periodMonths months, in now's location.
func (s *Service) Monthly(ctx context.Context, userID string, periodMonths int, now time.Time) (_ *Monthly, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.monthly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.checkins.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	weights := Observations(records)
	observations := make([]aggregation.Observation, 0, len(weights))
	for _, w := range weights {
		observations = append(observations, aggregation.Observation{Date: w.Date, Value: w.Weight})
	}

	buckets := aggregation.GroupByMonth(observations, periodMonths, now)
	return &Monthly{
		Buckets: buckets,
		Summary: aggregation.Summarize(buckets),
	}, nil
}

// Series returns the metric as an ascending time series, of one calendar year in loc when year is set.
func (s *Service) Series(ctx context.Context, userID string, metric Metric, year *int, loc *time.Location) (_ []aggregation.Point, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.checkins.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	points := make([]aggregation.Point, 0, len(records))
	switch metric {
	case MetricWeight:
		for _, w := range Observations(records) {
			points = append(points, aggregation.Point{Date: w.Date, Value: w.Weight})
		}
	case MetricScore:
		for _, r := range records {
			points = append(points, aggregation.Point{Date: r.Date, Value: r.FinalScore})
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
	}

	return aggregation.ToSeries(points, year, loc), nil
}
