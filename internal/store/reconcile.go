package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"
)

var _ Store = (*Reconciler)(nil)

// Reconciler hides legacy duplicate collections (e.g. "Checkins" next to "checkins")
// behind their canonical name. Reads merge the canonical collection with its legacy
// aliases, de-duplicated by document ID with the canonical copy winning.
// Writes only ever go to the canonical collection.
type Reconciler struct {
	base    Store
	aliases map[string][]string
}

func NewReconciler(base Store, aliases map[string][]string) *Reconciler {
	return &Reconciler{
		base:    base,
		aliases: aliases,
	}
}

func (r *Reconciler) collections(canonical string) []string {
	return append([]string{canonical}, r.aliases[canonical]...)
}

func (r *Reconciler) Query(ctx context.Context, q Query) ([]Document, error) {
	perCollection := make([][]Document, 0, len(r.aliases[q.Collection])+1)
	for _, c := range r.collections(q.Collection) {
		cq := q
		cq.Collection = c
		cq.Limit = 0
		docs, err := r.base.Query(ctx, cq)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", c, err)
		}
		perCollection = append(perCollection, docs)
	}
	return merge(q, perCollection), nil
}

// merge expects the canonical collection first.
func merge(q Query, perCollection [][]Document) []Document {
	seen := make(map[string]bool)
	merged := make([]Document, 0)
	for _, docs := range perCollection {
		for _, d := range docs {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			d.Collection = q.Collection
			merged = append(merged, d)
		}
	}
	SortDocuments(merged, q.OrderBy, q.Descending)
	if q.Limit > 0 && len(merged) > q.Limit {
		merged = merged[:q.Limit]
	}
	return merged
}

func (r *Reconciler) Get(ctx context.Context, collection, id string) (*Document, error) {
	for _, c := range r.collections(collection) {
		doc, err := r.base.Get(ctx, c, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		doc.Collection = collection
		return doc, nil
	}
	return nil, ErrNotFound
}

// Write to a document only present in a legacy collection copies it over
// to the canonical one first, so merge writes keep the legacy fields.
func (r *Reconciler) Write(ctx context.Context, collection, id string, fields any, merge bool) (string, error) {
	if merge && id != "" {
		if _, err := r.base.Get(ctx, collection, id); errors.Is(err, ErrNotFound) {
			legacy, err := r.Get(ctx, collection, id)
			if err == nil {
				if _, err := r.base.Write(ctx, collection, id, legacy.Data, false); err != nil {
					return "", fmt.Errorf("copy legacy document: %w", err)
				}
			}
		}
	}
	return r.base.Write(ctx, collection, id, fields, merge)
}

// Delete removes the document from the canonical collection and every alias.
func (r *Reconciler) Delete(ctx context.Context, collection, id string) error {
	found := false
	for _, c := range r.collections(collection) {
		err := r.base.Delete(ctx, c, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		found = true
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Subscribe opens one live query per collection and delivers the merged result
// whenever any of them changes.
func (r *Reconciler) Subscribe(ctx context.Context, q Query, onSnapshot func(Snapshot)) (Subscription, error) {
	collections := r.collections(q.Collection)
	if len(collections) == 1 {
		return r.base.Subscribe(ctx, q, onSnapshot)
	}

	multi := &multiSubscription{}
	mu := &multi.mu
	latest := make([][]Document, len(collections))
	received := make([]bool, len(collections))

	for i, c := range collections {
		cq := q
		cq.Collection = c
		cq.Limit = 0
		idx := i
		sub, err := r.base.Subscribe(ctx, cq, func(snap Snapshot) {
			mu.Lock()
			defer mu.Unlock()
			if multi.closed {
				return
			}
			latest[idx] = snap.Documents
			received[idx] = true
			for _, ok := range received {
				if !ok {
					// wait for every collection's first snapshot
					return
				}
			}
			onSnapshot(Snapshot{
				Query:     q,
				Documents: merge(q, latest),
				At:        snap.At,
			})
		})
		if err != nil {
			return nil, multierr.Append(fmt.Errorf("subscribe %s: %w", c, err), multi.Close())
		}
		multi.subs = append(multi.subs, sub)
	}

	return multi, nil
}

type multiSubscription struct {
	mu     sync.Mutex
	closed bool
	subs   []Subscription
}

func (m *multiSubscription) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	var err error
	for _, s := range m.subs {
		err = multierr.Append(err, s.Close())
	}
	return err
}
