package live

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fitcoach/internal/checkins/daily"
	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/checkins/weekly"
	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/telemetry/metrics"
)

type reminderStore interface {
	DismissedAt(ctx context.Context, userID string, now time.Time) (*time.Time, error)
}

// feed follows one user's check-ins of the current week and day, and signals on
// updates whenever the eligibility status may have changed. The watches are keyed by
// the week start and the day, so a new week or day re-subscribes and drops whatever
// the previous queries still deliver.
type feed struct {
	userID         string
	loc            *time.Location
	store          store.Store
	reminders      reminderStore
	metricsManager *metrics.Manager

	scope       *store.Scope
	weeklyWatch *store.KeyedWatch
	dailyWatch  *store.KeyedWatch
	updates     chan struct{}

	mu          sync.Mutex
	weeklyDates []time.Time
	dailyDates  []time.Time
	weeklyReady bool
	dailyReady  bool
}

func newFeed(
	userID string,
	loc *time.Location,
	st store.Store,
	reminders reminderStore,
	metricsManager *metrics.Manager,
) *feed {
	f := &feed{
		userID:         userID,
		loc:            loc,
		store:          st,
		reminders:      reminders,
		metricsManager: metricsManager,
		scope:          store.NewScope(),
		updates:        make(chan struct{}, 1),
	}
	f.weeklyWatch = store.NewKeyedWatch(f.subscribeWeek, f.onWeekly, f.onStale)
	f.dailyWatch = store.NewKeyedWatch(f.subscribeDay, f.onDaily, f.onStale)
	return f
}

// start subscribes for the week and day of now.
func (f *feed) start(ctx context.Context, now time.Time) error {
	if err := f.scope.Track(f.weeklyWatch); err != nil {
		return err
	}
	if err := f.scope.Track(f.dailyWatch); err != nil {
		return err
	}
	return f.rekey(ctx, now)
}

// rekey moves the watches to the week and day of now; a no-op while they do not change.
func (f *feed) rekey(ctx context.Context, now time.Time) error {
	now = now.In(f.loc)
	weekKey := eligibility.StartOfWeek(now).Format(time.DateOnly)
	dayKey := eligibility.StartOfDay(now).Format(time.DateOnly)

	if f.weeklyWatch.Key() != weekKey {
		f.mu.Lock()
		f.weeklyReady = false
		f.mu.Unlock()
	}
	if f.dailyWatch.Key() != dayKey {
		f.mu.Lock()
		f.dailyReady = false
		f.mu.Unlock()
	}

	return multierr.Append(
		f.weeklyWatch.SetKey(ctx, weekKey),
		f.dailyWatch.SetKey(ctx, dayKey),
	)
}

func (f *feed) close() error {
	return f.scope.Release()
}

func (f *feed) keyTime(key string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, key, f.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad feed key %q: %w", key, err)
	}
	return t, nil
}

func (f *feed) subscribeWeek(ctx context.Context, key string, deliver func(store.Snapshot)) (store.Subscription, error) {
	weekStart, err := f.keyTime(key)
	if err != nil {
		return nil, err
	}
	return f.store.Subscribe(ctx, weekly.UserQuery(f.userID, weekStart), deliver)
}

func (f *feed) subscribeDay(ctx context.Context, key string, deliver func(store.Snapshot)) (store.Subscription, error) {
	day, err := f.keyTime(key)
	if err != nil {
		return nil, err
	}
	return f.store.Subscribe(ctx, daily.UserQuery(f.userID, day, day.AddDate(0, 0, 1)), deliver)
}

func (f *feed) onWeekly(_ string, snap store.Snapshot) {
	records, err := weekly.Docs2Checkins(snap.Documents)
	if err != nil {
		log.Errorf("live feed of %s: decode weekly snapshot: %s", f.userID, err)
		return
	}
	f.delivered(snap.Query.Collection)

	f.mu.Lock()
	f.weeklyDates = weekly.Dates(records)
	f.weeklyReady = true
	f.mu.Unlock()
	f.signal()
}

func (f *feed) onDaily(_ string, snap store.Snapshot) {
	records, err := daily.Docs2Checkins(snap.Documents)
	if err != nil {
		log.Errorf("live feed of %s: decode daily snapshot: %s", f.userID, err)
		return
	}
	f.delivered(snap.Query.Collection)

	f.mu.Lock()
	f.dailyDates = daily.Dates(records)
	f.dailyReady = true
	f.mu.Unlock()
	f.signal()
}

func (f *feed) onStale(key string) {
	log.Tracef("live feed of %s: dropped stale snapshot for %s", f.userID, key)
	if f.metricsManager != nil {
		f.metricsManager.CounterStaleSnapshots.Inc()
	}
}

func (f *feed) delivered(collection string) {
	if f.metricsManager != nil {
		f.metricsManager.CounterSnapshotsDelivered.WithLabelValues(collection).Inc()
	}
}

func (f *feed) signal() {
	select {
	case f.updates <- struct{}{}:
	default:
	}
}

// status computes the current status; ok is false until both watches delivered.
func (f *feed) status(ctx context.Context, now time.Time) (_ *eligibility.Status, ok bool, err error) {
	f.mu.Lock()
	if !f.weeklyReady || !f.dailyReady {
		f.mu.Unlock()
		return nil, false, nil
	}
	weeklyDates := append([]time.Time(nil), f.weeklyDates...)
	dailyDates := append([]time.Time(nil), f.dailyDates...)
	f.mu.Unlock()

	now = now.In(f.loc)
	dismissedAt, err := f.reminders.DismissedAt(ctx, f.userID, now)
	if err != nil {
		return nil, false, err
	}

	status := eligibility.NewStatus(now, weeklyDates, dailyDates, dismissedAt)
	return &status, true, nil
}
