package store

import (
	"context"
	"errors"
	"sync"
)

// ErrSaveRejected is returned by a MemoryBackend whose saves have been disabled
var ErrSaveRejected = errors.New("save rejected")

// MemoryBackend keeps snapshots in memory. Used by tests and by DATA_DIR-less dry runs.
type MemoryBackend struct {
	mu        sync.Mutex
	snapshots map[string][]byte
	saves     map[string]int
	failSaves bool
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		snapshots: make(map[string][]byte),
		saves:     make(map[string]int),
	}
}

func (b *MemoryBackend) Load(_ context.Context, name string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.snapshots[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (b *MemoryBackend) Save(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failSaves {
		return ErrSaveRejected
	}
	b.snapshots[name] = append([]byte(nil), data...)
	b.saves[name]++
	return nil
}

func (b *MemoryBackend) Ping(_ context.Context) error { return nil }

func (b *MemoryBackend) Close() error { return nil }

// Put seeds a raw snapshot
func (b *MemoryBackend) Put(name string, data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshots[name] = append([]byte(nil), data...)
}

// Raw returns the last snapshot written under name
func (b *MemoryBackend) Raw(name string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]byte(nil), b.snapshots[name]...)
}

// Saves returns how many times name has been written
func (b *MemoryBackend) Saves(name string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saves[name]
}

// FailSaves makes every subsequent Save fail (or succeed again)
func (b *MemoryBackend) FailSaves(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failSaves = fail
}
