package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/2beens/fitcoach/internal/checkins/eligibility"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

const keyPrefix = "reminder-dismissed||"

// Store keeps weekly reminder dismissals. A dismissal only lives until the end of
// the calendar week it was made in.
type Store struct {
	redisClient *redis.Client
}

func NewStore(redisClient *redis.Client) *Store {
	return &Store{
		redisClient: redisClient,
	}
}

func Key(userID string, now time.Time) string {
	return fmt.Sprintf("%s%s||%s", keyPrefix, userID, eligibility.StartOfWeek(now).Format(time.DateOnly))
}

func (s *Store) Dismiss(ctx context.Context, userID string, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.reminder.dismiss")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ttl := eligibility.StartOfWeek(now).AddDate(0, 0, 7).Sub(now)
	if err := s.redisClient.Set(ctx, Key(userID, now), now.Format(time.RFC3339Nano), ttl).Err(); err != nil {
		return fmt.Errorf("set dismissal of %s: %w", userID, err)
	}
	return nil
}

// DismissedAt returns when the user dismissed the reminder during now's week, or nil.
func (s *Store) DismissedAt(ctx context.Context, userID string, now time.Time) (_ *time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.reminder.dismissedAt")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := s.redisClient.Get(ctx, Key(userID, now)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dismissal of %s: %w", userID, err)
	}

	dismissedAt, err := time.Parse(time.RFC3339Nano, val)
	if err != nil {
		return nil, fmt.Errorf("parse dismissal of %s: %w", userID, err)
	}
	dismissedAt = dismissedAt.In(now.Location())
	return &dismissedAt, nil
}
