package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitcoach/internal/store"
	"github.com/2beens/fitcoach/internal/telemetry/tracing"
)

type Repo struct {
	store store.Store
}

func NewRepo(s store.Store) *Repo {
	return &Repo{
		store: s,
	}
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *DailyGoalSet, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := r.store.Get(ctx, Collection, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGoalsNotSet
		}
		return nil, err
	}

	var set DailyGoalSet
	if err := doc.Decode(&set); err != nil {
		return nil, err
	}
	set.UserID = doc.ID
	return &set, nil
}

func (r *Repo) Save(ctx context.Context, set DailyGoalSet) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set.UpdatedAt = set.UpdatedAt.UTC()
	if _, err := r.store.Write(ctx, Collection, set.UserID, set, false); err != nil {
		return fmt.Errorf("save goals of %s: %w", set.UserID, err)
	}
	return nil
}
