package visibility

import (
	"context"
	"encoding/json"
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

// Get returns the stored settings of the client. Flags missing from the stored
// document keep their default value.
func (r *Repo) Get(ctx context.Context, clientID string) (_ *Settings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visibility.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings := Defaults(clientID)
	doc, err := r.store.Get(ctx, Collection, clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(doc.Data, &settings); err != nil {
		return nil, fmt.Errorf("decode visibility of %s: %w", clientID, err)
	}
	settings.ClientID = clientID
	return &settings, nil
}

func (r *Repo) Save(ctx context.Context, settings Settings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.visibility.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	settings.UpdatedAt = settings.UpdatedAt.UTC()
	if _, err := r.store.Write(ctx, Collection, settings.ClientID, settings, false); err != nil {
		return fmt.Errorf("save visibility of %s: %w", settings.ClientID, err)
	}
	return nil
}
