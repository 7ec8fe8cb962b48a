package store

import (
	"sync"

	"go.uber.org/multierr"
)

// Scope owns the subscriptions of one consumer (a websocket session, a dashboard view)
// and closes all of them on Release.
type Scope struct {
	mu       sync.Mutex
	subs     []Subscription
	released bool
}

func NewScope() *Scope {
	return &Scope{}
}

// Track hands sub over to the scope. Tracking on a released scope closes sub right away.
func (s *Scope) Track(sub Subscription) error {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		if err := sub.Close(); err != nil {
			return multierr.Append(ErrScopeReleased, err)
		}
		return ErrScopeReleased
	}
	s.subs = append(s.subs, sub)
	s.mu.Unlock()
	return nil
}

// Release closes every tracked subscription. Calling it again is a no-op.
func (s *Scope) Release() error {
	s.mu.Lock()
	if s.released {
		s.mu.Unlock()
		return nil
	}
	s.released = true
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	var err error
	for _, sub := range subs {
		err = multierr.Append(err, sub.Close())
	}
	return err
}

func (s *Scope) Released() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.released
}
