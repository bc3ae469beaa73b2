package prompt

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/testing/leaktest"
)

var key = Key{ChannelID: "c1", UserID: "u1"}

func waitPending(t *testing.T, b *Broker, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return b.Pending() == n }, time.Second, time.Millisecond)
}

func TestAwait_Resolved(t *testing.T) {
	b := NewBroker()
	got := make(chan string, 1)
	go func() {
		content, err := b.Await(context.Background(), key, AnyReply, time.Second)
		assert.NoError(t, err)
		got <- content
	}()
	waitPending(t, b, 1)

	assert.False(t, b.Deliver(Key{ChannelID: "c2", UserID: "u1"}, "male"), "other channel")
	assert.False(t, b.Deliver(Key{ChannelID: "c1", UserID: "u2"}, "male"), "other user")
	assert.True(t, b.Deliver(key, "male"))
	assert.Equal(t, "male", <-got)
	assert.Equal(t, 0, b.Pending())
	assert.False(t, b.Deliver(key, "again"), "resolved prompt consumes once")
}

func TestAwait_AcceptFilter(t *testing.T) {
	b := NewBroker()
	yesNo := func(s string) bool {
		s = strings.ToLower(s)
		return s == "yes" || s == "no"
	}
	got := make(chan string, 1)
	go func() {
		content, err := b.Await(context.Background(), key, yesNo, time.Second)
		assert.NoError(t, err)
		got <- content
	}()
	waitPending(t, b, 1)

	assert.False(t, b.Deliver(key, "maybe"))
	assert.True(t, b.Deliver(key, "YES"))
	assert.Equal(t, "YES", <-got)
}

func TestAwait_Timeout(t *testing.T) {
	b := NewBroker()
	_, err := b.Await(context.Background(), key, AnyReply, 10*time.Millisecond)
	assert.ErrorIs(t, err, domain.ErrPromptTimeout)
	assert.Equal(t, 0, b.Pending())
	assert.False(t, b.Deliver(key, "late"))
}

func TestAwait_Superseded(t *testing.T) {
	b := NewBroker()
	first := make(chan error, 1)
	go func() {
		_, err := b.Await(context.Background(), key, AnyReply, time.Second)
		first <- err
	}()
	waitPending(t, b, 1)

	second := make(chan string, 1)
	go func() {
		content, _ := b.Await(context.Background(), key, AnyReply, time.Second)
		second <- content
	}()

	assert.ErrorIs(t, <-first, domain.ErrPromptSuperseded)
	waitPending(t, b, 1)
	assert.True(t, b.Deliver(key, "Spot"))
	assert.Equal(t, "Spot", <-second)
}

func TestAwait_ContextCancelled(t *testing.T) {
	b := NewBroker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Await(ctx, key, AnyReply, time.Second)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, b.Pending())
}

func TestAbandon_KeepsReplyDeliveredAtExpiry(t *testing.T) {
	b := NewBroker()
	p := &pending{accept: AnyReply, reply: make(chan string, 1), done: make(chan struct{})}
	b.mu.Lock()
	b.pending[key] = p
	b.mu.Unlock()

	// The reply lands after the timer fired but before the waiter unregisters
	require.True(t, b.Deliver(key, "yes"))

	content, err := b.abandon(key, p, domain.ErrPromptTimeout)
	require.NoError(t, err)
	assert.Equal(t, "yes", content)
	assert.Zero(t, b.Pending())
}

func TestAbandon_NoReply(t *testing.T) {
	b := NewBroker()
	p := &pending{accept: AnyReply, reply: make(chan string, 1), done: make(chan struct{})}
	b.mu.Lock()
	b.pending[key] = p
	b.mu.Unlock()

	_, err := b.abandon(key, p, domain.ErrPromptTimeout)
	assert.ErrorIs(t, err, domain.ErrPromptTimeout)
	assert.Zero(t, b.Pending())
}

func TestAwait_NoGoroutinesLeftBehind(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		b := NewBroker()
		done := make(chan struct{})
		for i := 0; i < 10; i++ {
			k := Key{ChannelID: "c1", UserID: string(rune('a' + i))}
			go func() {
				_, _ = b.Await(context.Background(), k, AnyReply, 20*time.Millisecond)
				done <- struct{}{}
			}()
		}
		for i := 0; i < 10; i++ {
			<-done
		}
		assert.Equal(t, 0, b.Pending())
	})
}
