package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// Backend persists named snapshots
type Backend interface {
	// Load returns the last snapshot written under name. ok is false when none exists.
	Load(ctx context.Context, name string) (data []byte, ok bool, err error)
	// Save replaces the snapshot stored under name
	Save(ctx context.Context, name string, data []byte) error
	// Ping reports whether the backend is reachable
	Ping(ctx context.Context) error
	Close() error
}

// Store is a flat mapping keyed by user id, persisted as a whole snapshot after
// every successful mutation. All writes go through a single exclusive lock.
type Store[V any] struct {
	name    string
	backend Backend

	mu   sync.RWMutex
	data map[string]V
}

// Open loads the named mapping from the backend. An unreadable snapshot is an error.
func Open[V any](ctx context.Context, backend Backend, name string) (*Store[V], error) {
	raw, ok, err := backend.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadFailed, name, err)
	}

	data := make(map[string]V)
	if ok && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf(ErrMsgDecodeFailed, name, err)
		}
		if data == nil {
			data = make(map[string]V)
		}
	}

	slog.Default().Info(LogMsgStoreLoaded, "store", name, "entries", len(data))
	return &Store[V]{
		name:    name,
		backend: backend,
		data:    data,
	}, nil
}

// Name returns the store's snapshot name
func (s *Store[V]) Name() string {
	return s.name
}

// Get returns the value stored for key
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Len returns the number of entries
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Keys returns all keys in sorted order
func (s *Store[V]) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a shallow copy of the mapping
func (s *Store[V]) Snapshot() map[string]V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.data)
}

// Update applies fn to a copy of the mapping. If fn succeeds the full mapping is
// written to the backend and becomes current. If fn or the write fails, the
// store is left exactly as it was.
func (s *Store[V]) Update(ctx context.Context, fn func(m map[string]V) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.data)
	if next == nil {
		next = make(map[string]V)
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.data = next
	return nil
}

// Flush rewrites the current mapping to the backend
func (s *Store[V]) Flush(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.write(ctx, s.data)
}

func (s *Store[V]) write(ctx context.Context, m map[string]V) error {
	raw, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeFailed, s.name, err)
	}
	if err := s.backend.Save(ctx, s.name, raw); err != nil {
		slog.Default().Error(LogMsgSaveFailed, "store", s.name, "error", err)
		return fmt.Errorf(ErrMsgSaveFailed, s.name, err)
	}
	return nil
}

// Flusher is implemented by every Store regardless of value type
type Flusher interface {
	Name() string
	Flush(ctx context.Context) error
}

// FlushAll flushes every store, returning the first error after attempting all
func FlushAll(ctx context.Context, stores ...Flusher) error {
	var first error
	for _, st := range stores {
		if err := st.Flush(ctx); err != nil {
			slog.Default().Error(LogMsgFlushFailed, "store", st.Name(), "error", err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
