package store

import (
	"context"
	"sync"
)

type SubscribeFunc func(ctx context.Context, key string, deliver func(Snapshot)) (Subscription, error)

// KeyedWatch keeps exactly one live query for the current key (usually a user ID).
// Changing the key closes the old query and opens a new one; snapshots still in flight
// from the old query are dropped and never reach onSnapshot.
type KeyedWatch struct {
	subscribe  SubscribeFunc
	onSnapshot func(key string, snap Snapshot)
	onStale    func(key string)

	mu  sync.Mutex
	key string
	gen uint64
	sub Subscription
}

func NewKeyedWatch(
	subscribe SubscribeFunc,
	onSnapshot func(key string, snap Snapshot),
	onStale func(key string),
) *KeyedWatch {
	if onStale == nil {
		onStale = func(string) {}
	}
	return &KeyedWatch{
		subscribe:  subscribe,
		onSnapshot: onSnapshot,
		onStale:    onStale,
	}
}

// SetKey re-subscribes for key, unless key is already the current one.
func (w *KeyedWatch) SetKey(ctx context.Context, key string) error {
	w.mu.Lock()
	if w.sub != nil && w.key == key {
		w.mu.Unlock()
		return nil
	}
	w.gen++
	gen := w.gen
	w.key = key
	old := w.sub
	w.sub = nil
	w.mu.Unlock()

	if old != nil {
		if err := old.Close(); err != nil {
			return err
		}
	}

	sub, err := w.subscribe(ctx, key, func(snap Snapshot) {
		w.mu.Lock()
		defer w.mu.Unlock()
		if gen != w.gen {
			w.onStale(key)
			return
		}
		w.onSnapshot(key, snap)
	})
	if err != nil {
		return err
	}

	w.mu.Lock()
	if gen != w.gen {
		// superseded while subscribing
		w.mu.Unlock()
		return sub.Close()
	}
	w.sub = sub
	w.mu.Unlock()
	return nil
}

func (w *KeyedWatch) Key() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.key
}

// Close stops the current live query; later snapshots are dropped.
func (w *KeyedWatch) Close() error {
	w.mu.Lock()
	w.gen++
	sub := w.sub
	w.sub = nil
	w.mu.Unlock()

	if sub == nil {
		return nil
	}
	return sub.Close()
}
