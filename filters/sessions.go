package filters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/phnam24/frontend-v1-sub001/persistence"
	"go.uber.org/zap"
)

// Sessions rebuilds per-session State and Wishlist from a BlobStore and
// wires a persistence observer into each.
type Sessions struct {
	store persistence.BlobStore
	log   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessions(store persistence.BlobStore, log *zap.Logger) *Sessions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sessions{store: store, log: log, locks: make(map[string]*sessionLock)}
}

// Lock holds sessionID until the returned func is called. Callers hold it
// across load, change and save so concurrent requests on one session do
// not overwrite each other. It only orders requests within this process.
func (s *Sessions) Lock(sessionID string) (unlock func()) {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()

		s.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.mu.Unlock()
	}
}

func filtersKey(sessionID string) string  { return "filters:" + sessionID }
func wishlistKey(sessionID string) string { return "wishlist:" + sessionID }

// Filters loads the session's filter state. A missing or unreadable blob
// starts the session from NewCriteria.
func (s *Sessions) Filters(ctx context.Context, sessionID string) (*State, error) {
	key := filtersKey(sessionID)

	criteria := NewCriteria()
	blob, err := s.store.Load(ctx, key)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load filters: %w", err)
	default:
		if err := json.Unmarshal(blob, &criteria); err != nil {
			s.log.Warn("discarding unreadable filter state", zap.String("session", sessionID), zap.Error(err))
			criteria = NewCriteria()
		}
	}

	return NewState(criteria, s.saveCriteria(ctx, key)), nil
}

// Wishlist loads the session's wishlist.
func (s *Sessions) Wishlist(ctx context.Context, sessionID string) (*Wishlist, error) {
	key := wishlistKey(sessionID)

	var ids []int64
	blob, err := s.store.Load(ctx, key)
	switch {
	case errors.Is(err, persistence.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("load wishlist: %w", err)
	default:
		if err := json.Unmarshal(blob, &ids); err != nil {
			s.log.Warn("discarding unreadable wishlist", zap.String("session", sessionID), zap.Error(err))
			ids = nil
		}
	}

	return NewWishlist(ids, s.saveIDs(ctx, key)), nil
}

func (s *Sessions) saveCriteria(ctx context.Context, key string) Observer {
	return func(c Criteria) error {
		blob, err := json.Marshal(c)
		if err != nil {
			return err
		}
		if err := s.store.Save(ctx, key, blob); err != nil {
			s.log.Error("saving filter state failed", zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	}
}

func (s *Sessions) saveIDs(ctx context.Context, key string) func([]int64) error {
	return func(ids []int64) error {
		if ids == nil {
			ids = []int64{}
		}
		blob, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		if err := s.store.Save(ctx, key, blob); err != nil {
			s.log.Error("saving wishlist failed", zap.String("key", key), zap.Error(err))
			return err
		}
		return nil
	}
}
