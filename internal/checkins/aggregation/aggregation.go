package aggregation

import (
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fitcoach/internal/checkins/eligibility"
)

const NoBestMonth = "N/A"

// Observation is one dated numeric value, e.g. a weekly weight or a final score.
// A zero Date means the date is missing, and such observations are skipped.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type MonthBucket struct {
	Month      time.Time `json:"month"`
	MonthLabel string    `json:"monthLabel"`
	Average    float64   `json:"average"`
	Delta      float64   `json:"delta"`
	Count      int       `json:"count"`
}

type Summary struct {
	TotalChange          float64 `json:"totalChange"`
	AverageMonthlyChange float64 `json:"averageMonthlyChange"`
	BestMonth            string  `json:"bestMonth"`
}

// GroupByMonth buckets the observations from the last periodMonths months (relative to now)
// by calendar month in now's location. Buckets are ascending and each carries the change of
// its average against the previous bucket; the first bucket's delta is 0.
func GroupByMonth(observations []Observation, periodMonths int, now time.Time) []MonthBucket {
	if periodMonths < 0 {
		panic(fmt.Sprintf("negative period: %d months", periodMonths))
	}

	loc := now.Location()
	cutoff := now.AddDate(0, -periodMonths, 0)

	type acc struct {
		sum   float64
		count int
	}
	month2acc := make(map[time.Time]*acc)
	for _, o := range observations {
		if o.Date.IsZero() || o.Date.Before(cutoff) {
			continue
		}
		m := firstOfMonth(o.Date.In(loc))
		a, ok := month2acc[m]
		if !ok {
			a = &acc{}
			month2acc[m] = a
		}
		a.sum += o.Value
		a.count++
	}

	buckets := make([]MonthBucket, 0, len(month2acc))
	for m, a := range month2acc {
		buckets = append(buckets, MonthBucket{
			Month:      m,
			MonthLabel: m.Format("Jan"),
			Average:    a.sum / float64(a.count),
			Count:      a.count,
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})

	for i := 1; i < len(buckets); i++ {
		buckets[i].Delta = buckets[i].Average - buckets[i-1].Average
	}

	return buckets
}

// Summarize expects buckets as returned by GroupByMonth (ascending).
func Summarize(buckets []MonthBucket) Summary {
	if len(buckets) == 0 {
		return Summary{BestMonth: NoBestMonth}
	}

	var deltaSum float64
	best := buckets[0]
	for _, b := range buckets {
		deltaSum += b.Delta
		// strictly greater keeps the earliest month on ties
		if b.Delta > best.Delta {
			best = b
		}
	}

	return Summary{
		TotalChange:          buckets[len(buckets)-1].Average - buckets[0].Average,
		AverageMonthlyChange: deltaSum / float64(len(buckets)),
		BestMonth:            best.MonthLabel,
	}
}

func firstOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// Dated is implemented by check-in records that can be grouped into calendar weeks.
type Dated interface {
	CheckinDate() time.Time
}

type WeekGroup[T Dated] struct {
	WeekStart time.Time `json:"weekStart"`
	Label     string    `json:"label"`
	Records   []T       `json:"records"`
}

// GroupByWeek segments records by calendar week (weeks starting on weekStart, in loc).
// Groups are ordered most recent week first, and records inside a group newest first.
func GroupByWeek[T Dated](records []T, weekStart time.Weekday, loc *time.Location) []WeekGroup[T] {
	week2records := make(map[time.Time][]T)
	for _, r := range records {
		d := r.CheckinDate()
		if d.IsZero() {
			continue
		}
		ws := eligibility.StartOfWeekOn(d.In(loc), weekStart)
		week2records[ws] = append(week2records[ws], r)
	}

	groups := make([]WeekGroup[T], 0, len(week2records))
	for ws, weekRecords := range week2records {
		sort.SliceStable(weekRecords, func(i, j int) bool {
			return weekRecords[i].CheckinDate().After(weekRecords[j].CheckinDate())
		})
		groups = append(groups, WeekGroup[T]{
			WeekStart: ws,
			Label:     WeekLabel(ws),
			Records:   weekRecords,
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].WeekStart.After(groups[j].WeekStart)
	})

	return groups
}

// WeekLabel renders a week as "Mar 3 - Mar 9".
func WeekLabel(weekStart time.Time) string {
	weekEnd := weekStart.AddDate(0, 0, 6)
	return fmt.Sprintf("%s - %s", weekStart.Format("Jan 2"), weekEnd.Format("Jan 2"))
}

type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ToSeries returns the points of the given calendar year in loc (all points when year is nil)
// in ascending date order. The input slice is never modified.
func ToSeries(points []Point, year *int, loc *time.Location) []Point {
	if loc == nil {
		loc = time.UTC
	}
	series := make([]Point, 0, len(points))
	for _, p := range points {
		if p.Date.IsZero() {
			continue
		}
		if year != nil && p.Date.In(loc).Year() != *year {
			continue
		}
		series = append(series, p)
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}
