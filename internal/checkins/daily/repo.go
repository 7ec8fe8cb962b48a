package daily

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

func (r *Repo) Add(ctx context.Context, record DailyCheckinRecord) (_ *DailyCheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.daily.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.Date = record.Date.UTC()
	record.Timestamp = record.Timestamp.UTC()

	if _, err := r.store.Write(ctx, Collection, record.ID, record, false); err != nil {
		return nil, fmt.Errorf("write daily check-in: %w", err)
	}
	return &record, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *DailyCheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.daily.get")
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

// ListByUser returns the user's daily check-ins dated in [from, to), newest first.
// Zero bounds are open.
func (r *Repo) ListByUser(ctx context.Context, userID string, from, to time.Time) (_ []DailyCheckinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.daily.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	docs, err := r.store.Query(ctx, UserQuery(userID, from, to))
	if err != nil {
		return nil, fmt.Errorf("query daily check-ins: %w", err)
	}
	return Docs2Checkins(docs)
}

func (r *Repo) Update(ctx context.Context, record DailyCheckinRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.daily.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	record.Date = record.Date.UTC()
	record.Timestamp = record.Timestamp.UTC()
	// full replace, cleared optional fields are omitted from the JSON
	if _, err := r.store.Write(ctx, Collection, record.ID, record, false); err != nil {
		return fmt.Errorf("update daily check-in %s: %w", record.ID, err)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.checkins.daily.delete")
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

func UserQuery(userID string, from, to time.Time) store.Query {
	q := store.Query{
		Collection: Collection,
		Filters:    []store.Filter{store.Eq("userId", userID)},
		OrderBy:    "date",
		Descending: true,
	}
	if !from.IsZero() {
		q.Filters = append(q.Filters, store.Gte("date", from.UTC()))
	}
	if !to.IsZero() {
		q.Filters = append(q.Filters, store.Lt("date", to.UTC()))
	}
	return q
}

func doc2checkin(doc store.Document) (DailyCheckinRecord, error) {
	var record DailyCheckinRecord
	if err := doc.Decode(&record); err != nil {
		return record, err
	}
	record.ID = doc.ID
	return record, nil
}

func Docs2Checkins(docs []store.Document) ([]DailyCheckinRecord, error) {
	records := make([]DailyCheckinRecord, 0, len(docs))
	for _, doc := range docs {
		record, err := doc2checkin(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
