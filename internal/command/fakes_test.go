package command

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/concurrency"
	"github.com/osse101/BabyEggBot_Go/internal/cooldown"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
	"github.com/osse101/BabyEggBot_Go/internal/prompt"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

const testOwner = "999"

// fakeReplier records replies in order
type fakeReplier struct {
	mu      sync.Mutex
	replies []string
}

func (f *fakeReplier) Reply(_ context.Context, _ Message, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, text)
	return nil
}

func (f *fakeReplier) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.replies...)
}

func (f *fakeReplier) last() string {
	all := f.all()
	if len(all) == 0 {
		return ""
	}
	return all[len(all)-1]
}

func (f *fakeReplier) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = nil
}

// scriptedPrompts answers prompts from a per-user queue; an exhausted queue times out
type scriptedPrompts struct {
	mu      sync.Mutex
	answers map[string][]string
}

func (s *scriptedPrompts) push(userID string, answers ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.answers == nil {
		s.answers = make(map[string][]string)
	}
	s.answers[userID] = append(s.answers[userID], answers...)
}

func (s *scriptedPrompts) Await(_ context.Context, key prompt.Key, accept prompt.Accept, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.answers[key.UserID]) > 0 {
		next := s.answers[key.UserID][0]
		s.answers[key.UserID] = s.answers[key.UserID][1:]
		if accept == nil || accept(next) {
			return next, nil
		}
	}
	return "", domain.ErrPromptTimeout
}

type harness struct {
	router  *Router
	replies *fakeReplier
	prompts *scriptedPrompts
	clock   *clock.SimulatedClock
	coins   *store.Store[int]
	ledger  economy.Service
	eggs    egg.Service
	inv     inventory.Service
	backend *store.MemoryBackend
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemoryBackend()

	eggStore, err := store.Open[domain.Egg](ctx, backend, domain.StoreEggs)
	require.NoError(t, err)
	marriageStore, err := store.Open[string](ctx, backend, domain.StoreMarriages)
	require.NoError(t, err)
	claimStore, err := store.Open[time.Time](ctx, backend, domain.StoreLastClaim)
	require.NoError(t, err)
	coinStore, err := store.Open[int](ctx, backend, domain.StoreCoins)
	require.NoError(t, err)
	invStore, err := store.Open[[]string](ctx, backend, domain.StoreInventory)
	require.NoError(t, err)

	clk := clock.NewSimulatedClock(time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC))
	marriages := marriage.NewService(marriageStore)
	eggs := egg.NewService(eggStore, marriages, clk)
	inv := inventory.NewService(invStore)
	cd := cooldown.NewStoreService(map[string]*store.Store[time.Time]{domain.ActionDaily: claimStore}, cooldown.Config{}, clk, concurrency.NewLockManager())
	ledger := economy.NewService(coinStore, cd, inv, economy.Config{OwnerID: testOwner})

	replies := &fakeReplier{}
	prompts := &scriptedPrompts{}
	router := NewRouter(Deps{
		Eggs:      eggs,
		Marriages: marriages,
		Ledger:    ledger,
		Inventory: inv,
		Prompts:   prompts,
		Replier:   replies,
	})
	return &harness{
		router:  router,
		replies: replies,
		prompts: prompts,
		clock:   clk,
		coins:   coinStore,
		ledger:  ledger,
		eggs:    eggs,
		inv:     inv,
		backend: backend,
	}
}

func (h *harness) send(t *testing.T, authorID, content string, mentions ...Mention) []string {
	t.Helper()
	h.replies.reset()
	handled := h.router.Handle(context.Background(), Message{
		ID:         fmt.Sprintf("m-%d", time.Now().UnixNano()),
		ChannelID:  "chan-1",
		AuthorID:   authorID,
		AuthorName: "user" + authorID,
		Content:    content,
		Mentions:   mentions,
	})
	require.True(t, handled, "command %q not handled", content)
	return h.replies.all()
}

func (h *harness) setBalance(t *testing.T, userID string, balance int) {
	t.Helper()
	require.NoError(t, h.coins.Update(context.Background(), func(m map[string]int) error {
		m[userID] = balance
		return nil
	}))
}

func user(id string) Mention {
	return Mention{ID: id, Username: "user" + id}
}
