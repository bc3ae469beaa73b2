package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/concurrency"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// storeBackend implements Service over one last-used mapping per action
type storeBackend struct {
	stores map[string]*store.Store[time.Time]
	config Config
	clock  clock.Clock
	locks  *concurrency.LockManager
}

// NewStoreService creates a cooldown service. stores maps each action name to the
// mapping of user id -> last use; the daily action uses the lastClaim store.
func NewStoreService(stores map[string]*store.Store[time.Time], config Config, clk clock.Clock, locks *concurrency.LockManager) Service {
	return &storeBackend{
		stores: stores,
		config: config,
		clock:  clk,
		locks:  locks,
	}
}

func (b *storeBackend) storeFor(action string) (*store.Store[time.Time], error) {
	st, ok := b.stores[action]
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownActionFmt, action)
	}
	return st, nil
}

// CheckCooldown checks if a user's action is on cooldown (unlocked read)
func (b *storeBackend) CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.GetLastUsed(ctx, userID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	onCooldown, remaining := checkCooldownInternal(b.clock.Now(), lastUsed, b.config.Duration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown checks and records the cooldown under a per user+action lock
func (b *storeBackend) EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	st, err := b.storeFor(action)
	if err != nil {
		return err
	}

	lock := b.locks.For(concurrency.Key{UserID: userID, Action: action})
	lock.Lock()
	defer lock.Unlock()

	onCooldown, remaining, err := b.CheckCooldown(ctx, userID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "userID", userID)
	}

	if err := fn(); err != nil {
		return err
	}

	now := b.clock.Now()
	if err := st.Update(ctx, func(m map[string]time.Time) error {
		m[userID] = now
		return nil
	}); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "userID", userID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *storeBackend) ResetCooldown(ctx context.Context, userID, action string) error {
	st, err := b.storeFor(action)
	if err != nil {
		return err
	}
	if err := st.Update(ctx, func(m map[string]time.Time) error {
		delete(m, userID)
		return nil
	}); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed, or nil if never
func (b *storeBackend) GetLastUsed(_ context.Context, userID, action string) (*time.Time, error) {
	st, err := b.storeFor(action)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	t, ok := st.Get(userID)
	if !ok || t.IsZero() {
		return nil, nil
	}
	return &t, nil
}
