package weekly

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

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

func (r *Repo) Add(ctx context.Context, record CheckinRecord) (_ *CheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.weekly.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Date = record.Date.UTC()

	if _, err := r.store.Write(ctx, Collection, record.ID, record, false); err != nil {
		return nil, fmt.Errorf("write check-in: %w", err)
	}
	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *CheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.weekly.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	doc, err := r.store.Get(ctx, Collection, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCheckinNotFound
		}
		return nil, err
	}

	record, err := doc2checkin(*doc)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByUser returns the user's check-ins dated at or after since (all when since is zero),
// newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string, since time.Time) (_ []CheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.weekly.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.Query(ctx, UserQuery(userID, since))
	if err != nil {
		return nil, fmt.Errorf("query check-ins: %w", err)
	}
	return Docs2Checkins(docs)
}

func (r *Repo) Update(ctx context.Context, record CheckinRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.weekly.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record.Date = record.Date.UTC()
	// full replace, cleared optional fields are omitted from the JSON
	if _, err := r.store.Write(ctx, Collection, record.ID, record, false); err != nil {
		return fmt.Errorf("update check-in %s: %w", record.ID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.weekly.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.store.Delete(ctx, Collection, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCheckinNotFound
		}
		return err
	}
	return nil
}

func UserQuery(userID string, since time.Time) store.Query {
	q := store.Query{
		Collection: Collection,
		Filters:    []store.Filter{store.Eq("userId", userID)},
		OrderBy:    "date",
		Descending: true,
	}
	if !since.IsZero() {
		q.Filters = append(q.Filters, store.Gte("date", since.UTC()))
	}
	return q
}

func doc2checkin(doc store.Document) (CheckinRecord, error) {
	var record CheckinRecord
	if err := doc.Decode(&record); err != nil {
		return record, err
	}
	record.ID = doc.ID
	return record, nil
}

func Docs2Checkins(docs []store.Document) ([]CheckinRecord, error) {
	records := make([]CheckinRecord, 0, len(docs))
	for _, doc := range docs {
		record, err := doc2checkin(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
