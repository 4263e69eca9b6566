// Package mirror keeps an in-memory copy of server collections and the
// figures derived from them.
package mirror

import (
	"context"
	"sync"

	"github.com/sm8ta/motodash/internal/core/domain"
)

// Remote is the server side of one collection.
type Remote[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, body interface{}) (*T, error)
	Update(ctx context.Context, id string, body interface{}) (*T, error)
	Delete(ctx context.Context, id string) error
}

// Store mirrors one collection. Local state only changes after the server
// confirms a write; failures are kept in LastError and returned.
type Store[T domain.Record] struct {
	remote Remote[T]

	mu        sync.RWMutex
	items     []*T
	loading   bool
	lastErr   error
	listeners []func()
}

func NewStore[T domain.Record](remote Remote[T]) *Store[T] {
	return &Store[T]{
		remote: remote,
		items:  make([]*T, 0),
	}
}

// Fetch replaces the local list with the server's.
func (s *Store[T]) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.remote.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err == nil {
		s.items = items
	}
	s.lastErr = err
	s.mu.Unlock()

	s.notify()
	return err
}

// Add creates a record and puts it first.
func (s *Store[T]) Add(ctx context.Context, body interface{}) (*T, error) {
	created, err := s.remote.Create(ctx, body)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]*T{created}, s.items...)
	s.lastErr = nil
	s.mu.Unlock()

	s.notify()
	return created, nil
}

// Update replaces the local copy of id with the server's answer.
func (s *Store[T]) Update(ctx context.Context, id string, body interface{}) (*T, error) {
	updated, err := s.remote.Update(ctx, id, body)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.mu.Lock()
	for i, item := range s.items {
		if (*item).GetID() == id {
			s.items[i] = updated
		}
	}
	s.lastErr = nil
	s.mu.Unlock()

	s.notify()
	return updated, nil
}

func (s *Store[T]) Remove(ctx context.Context, id string) error {
	if err := s.remote.Delete(ctx, id); err != nil {
		s.fail(err)
		return err
	}

	s.mu.Lock()
	kept := make([]*T, 0, len(s.items))
	for _, item := range s.items {
		if (*item).GetID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.lastErr = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// Items returns a snapshot of the list.
func (s *Store[T]) Items() []*T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]*T, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *Store[T]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers fn to run after every change.
func (s *Store[T]) Subscribe(fn func()) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Store[T]) fail(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
	s.notify()
}

// notify runs outside the lock so listeners may read the store.
func (s *Store[T]) notify() {
	s.mu.RLock()
	listeners := make([]func(), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
