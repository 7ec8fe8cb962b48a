package store

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type QueryFunc func(ctx context.Context, q Query) ([]Document, error)

type watch struct {
	cancel context.CancelFunc
	stop   func() error

	mu       sync.Mutex
	closed   bool
	closeErr error
	once     sync.Once
}

// Watch runs a live query: the current result set is delivered first, then a fresh one
// after every signal on changes. Signals arriving while a refresh runs are coalesced by
// the notifier. stop releases the change feed when the watch is closed.
func Watch(
	ctx context.Context,
	q Query,
	query QueryFunc,
	changes <-chan struct{},
	stop func() error,
	onSnapshot func(Snapshot),
) Subscription {
	ctx, cancel := context.WithCancel(ctx)
	w := &watch{
		cancel: cancel,
		stop:   stop,
	}

	go func() {
		w.refresh(ctx, q, query, onSnapshot)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					return
				}
				w.refresh(ctx, q, query, onSnapshot)
			}
		}
	}()

	return w
}

func (w *watch) refresh(ctx context.Context, q Query, query QueryFunc, onSnapshot func(Snapshot)) {
	docs, err := query(ctx, q)
	if err != nil {
		if ctx.Err() == nil {
			log.Errorf("store watch [%s]: refresh query: %s", q.Collection, err)
		}
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	onSnapshot(Snapshot{
		Query:     q,
		Documents: docs,
		At:        time.Now(),
	})
}

func (w *watch) Close() error {
	w.once.Do(func() {
		// waits for an in-flight delivery, nothing is delivered after this
		w.mu.Lock()
		w.closed = true
		w.mu.Unlock()

		w.cancel()
		if w.stop != nil {
			w.closeErr = w.stop()
		}
	})
	return w.closeErr
}
