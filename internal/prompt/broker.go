package prompt

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

// Key correlates a pending prompt with the user who must answer it and the
// channel the answer must arrive in
type Key struct {
	ChannelID string
	UserID    string
}

// Accept decides whether a reply resolves the prompt. Rejected replies are
// left for normal command handling.
type Accept func(content string) bool

// AnyReply accepts every message
func AnyReply(string) bool { return true }

type pending struct {
	accept Accept
	reply  chan string
	done   chan struct{} // closed when superseded
}

// Broker matches incoming messages against pending prompts
type Broker struct {
	mu      sync.Mutex
	pending map[Key]*pending
}

// NewBroker creates an empty broker
func NewBroker() *Broker {
	return &Broker{pending: make(map[Key]*pending)}
}

// Await registers a prompt for key and blocks until a matching reply is
// delivered, the timeout expires, ctx ends or a newer prompt replaces it.
func (b *Broker) Await(ctx context.Context, key Key, accept Accept, timeout time.Duration) (string, error) {
	if accept == nil {
		accept = AnyReply
	}
	p := &pending{
		accept: accept,
		reply:  make(chan string, 1),
		done:   make(chan struct{}),
	}

	b.mu.Lock()
	if old, ok := b.pending[key]; ok {
		close(old.done)
	}
	b.pending[key] = p
	b.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case content := <-p.reply:
		return content, nil
	case <-p.done:
		return "", domain.ErrPromptSuperseded
	case <-timer.C:
		return b.abandon(key, p, domain.ErrPromptTimeout)
	case <-ctx.Done():
		return b.abandon(key, p, ctx.Err())
	}
}

// abandon unregisters p. A reply delivered between expiry and removal has
// already been consumed by Deliver, so it wins over err.
func (b *Broker) abandon(key Key, p *pending, err error) (string, error) {
	b.remove(key, p)
	select {
	case content := <-p.reply:
		return content, nil
	default:
		return "", err
	}
}

// Deliver offers a message to the prompt pending for key. It reports whether
// the message was consumed.
func (b *Broker) Deliver(key Key, content string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.pending[key]
	if !ok || !p.accept(content) {
		return false
	}
	delete(b.pending, key)
	p.reply <- content
	return true
}

// Pending returns the number of prompts waiting for a reply
func (b *Broker) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

func (b *Broker) remove(key Key, p *pending) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cur, ok := b.pending[key]; ok && cur == p {
		delete(b.pending, key)
	}
}
