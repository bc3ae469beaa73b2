package discord

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// seenMessages remembers recently handled message ids so a redelivered
// MessageCreate after a gateway resume is handled once
type seenMessages struct {
	mu  sync.Mutex
	lru *expirable.LRU[string, struct{}]
}

func newSeenMessages(size int, ttl time.Duration) *seenMessages {
	return &seenMessages{
		lru: expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// firstSighting records id and reports whether it had not been seen before
func (s *seenMessages) firstSighting(id string) bool {
	if id == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lru.Contains(id) {
		return false
	}
	s.lru.Add(id, struct{}{})
	return true
}
