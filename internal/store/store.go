package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("document not found")
	ErrNotAnObject   = errors.New("document fields must be a json object")
	ErrScopeReleased = errors.New("scope already released")
)

// Document is one record of a collection, as stored. Data is always a JSON object.
// Typed repos decode it right at the boundary, nothing past them sees raw documents.
type Document struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Data       json.RawMessage `json:"data"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

func (d Document) Decode(v any) error {
	if err := json.Unmarshal(d.Data, v); err != nil {
		return fmt.Errorf("decode %s/%s: %w", d.Collection, d.ID, err)
	}
	return nil
}

type Op string

const (
	OpEq  Op = "=="
	OpGte Op = ">="
	OpLt  Op = "<"
)

// Filter compares a top level document field with Value.
// Value is one of string, bool, int, int64, float64 or time.Time.
type Filter struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Filter  { return Filter{Field: field, Op: OpEq, Value: value} }
func Gte(field string, value any) Filter { return Filter{Field: field, Op: OpGte, Value: value} }
func Lt(field string, value any) Filter  { return Filter{Field: field, Op: OpLt, Value: value} }

type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Snapshot is the full result set of a live query at one point in time.
type Snapshot struct {
	Query     Query
	Documents []Document
	At        time.Time
}

// Subscription is the handle of a live query. After Close returns, no more snapshots
// are delivered. Close must not be called from inside the snapshot callback.
type Subscription interface {
	Close() error
}

// Store is the remote document store the check-in services are built on.
type Store interface {
	// Subscribe delivers the current result set of q, and a fresh one every time the
	// collection changes, until the subscription is closed.
	Subscribe(ctx context.Context, q Query, onSnapshot func(Snapshot)) (Subscription, error)
	Query(ctx context.Context, q Query) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	// Write stores fields (anything that marshals to a JSON object) under id, generating an
	// id when empty. With merge, top level fields are overlaid onto the existing document.
	Write(ctx context.Context, collection, id string, fields any, merge bool) (string, error)
	Delete(ctx context.Context, collection, id string) error
}

// Notifier carries "collection changed" signals between writers and live queries.
type Notifier interface {
	Notify(ctx context.Context, collection string) error
	// Listen returns a channel receiving a value after each change, and a stop func.
	Listen(ctx context.Context, collection string) (<-chan struct{}, func() error, error)
}
