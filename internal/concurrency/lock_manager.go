package concurrency

import (
	"sync"
)

// Key names one lockable resource: a user's use of an action
type Key struct {
	UserID string
	Action string
}

// LockManager hands out one mutex per Key. Mutexes are kept for the life of
// the process; the key space is bounded by users times tracked actions.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates an empty LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// For returns the mutex guarding key
func (lm *LockManager) For(key Key) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Len reports how many keys have been handed a mutex
func (lm *LockManager) Len() int {
	n := 0
	lm.locks.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
