package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/2beens/fitcoach/internal/store"
)

var (
	_ store.Store    = (*Store)(nil)
	_ store.Notifier = (*Notifier)(nil)
)

// Store is an in-memory document store, used in development and tests.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]store.Document
	notifier    store.Notifier
	now         func() time.Time
}

func New() *Store {
	return NewWithNotifier(NewNotifier())
}

func NewWithNotifier(notifier store.Notifier) *Store {
	return &Store{
		collections: make(map[string]map[string]store.Document),
		notifier:    notifier,
		now:         time.Now,
	}
}

func (s *Store) Query(_ context.Context, q store.Query) ([]store.Document, error) {
	s.mu.RLock()
	docs := make([]store.Document, 0, len(s.collections[q.Collection]))
	for _, d := range s.collections[q.Collection] {
		docs = append(docs, d)
	}
	s.mu.RUnlock()
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return store.Apply(q, docs), nil
}

func (s *Store) Get(_ context.Context, collection, id string) (*store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.collections[collection][id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &d, nil
}

func (s *Store) Write(ctx context.Context, collection, id string, fields any, merge bool) (string, error) {
	data, err := store.MarshalFields(fields)
	if err != nil {
		return "", err
	}
	if id == "" {
		id = uuid.NewString()
	}

	s.mu.Lock()
	c, ok := s.collections[collection]
	if !ok {
		c = make(map[string]store.Document)
		s.collections[collection] = c
	}
	if existing, ok := c[id]; ok && merge {
		data, err = store.MergeFields(existing.Data, data)
		if err != nil {
			s.mu.Unlock()
			return "", err
		}
	}
	c[id] = store.Document{
		ID:         id,
		Collection: collection,
		Data:       json.RawMessage(data),
		UpdatedAt:  s.now(),
	}
	s.mu.Unlock()

	return id, s.notifier.Notify(ctx, collection)
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	if _, ok := s.collections[collection][id]; !ok {
		s.mu.Unlock()
		return store.ErrNotFound
	}
	delete(s.collections[collection], id)
	s.mu.Unlock()

	return s.notifier.Notify(ctx, collection)
}

func (s *Store) Subscribe(ctx context.Context, q store.Query, onSnapshot func(store.Snapshot)) (store.Subscription, error) {
	changes, stop, err := s.notifier.Listen(ctx, q.Collection)
	if err != nil {
		return nil, err
	}
	return store.Watch(ctx, q, s.Query, changes, stop, onSnapshot), nil
}

// Notifier is an in-process store.Notifier.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[string]map[int]chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{
		listeners: make(map[string]map[int]chan struct{}),
	}
}

func (n *Notifier) Notify(_ context.Context, collection string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.listeners[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

func (n *Notifier) Listen(_ context.Context, collection string) (<-chan struct{}, func() error, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	ch := make(chan struct{}, 1)
	if n.listeners[collection] == nil {
		n.listeners[collection] = make(map[int]chan struct{})
	}
	n.listeners[collection][id] = ch

	var once sync.Once
	stop := func() error {
		once.Do(func() {
			n.mu.Lock()
			delete(n.listeners[collection], id)
			n.mu.Unlock()
		})
		return nil
	}
	return ch, stop, nil
}
