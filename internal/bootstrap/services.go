package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/concurrency"
	"github.com/osse101/BabyEggBot_Go/internal/config"
	"github.com/osse101/BabyEggBot_Go/internal/cooldown"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/economy"
	"github.com/osse101/BabyEggBot_Go/internal/egg"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/marriage"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Services holds the domain services built over the stores
type Services struct {
	Eggs      egg.Service
	Marriages marriage.Service
	Cooldowns cooldown.Service
	Inventory inventory.Service
	Ledger    economy.Service
}

// InitializeServices wires the services and backfills eggs loaded without a
// creation time.
func InitializeServices(ctx context.Context, cfg *config.Config, stores *Stores, clk clock.Clock) (*Services, error) {
	marriages := marriage.NewService(stores.Marriages)
	eggs := egg.NewService(stores.Eggs, marriages, clk)

	cooldowns := cooldown.NewStoreService(
		map[string]*store.Store[time.Time]{domain.ActionDaily: stores.LastClaim},
		cooldown.Config{},
		clk,
		concurrency.NewLockManager(),
	)
	inv := inventory.NewService(stores.Inventory)

	policy := economy.AllowNegative
	if cfg.EconomyClampNegative {
		policy = economy.ClampAtZero
	}
	ledger := economy.NewService(stores.Coins, cooldowns, inv, economy.Config{
		OwnerID: cfg.BotOwnerID,
		Policy:  policy,
	})

	if _, err := eggs.Backfill(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgBackfillFailed, err)
	}

	return &Services{
		Eggs:      eggs,
		Marriages: marriages,
		Cooldowns: cooldowns,
		Inventory: inv,
		Ledger:    ledger,
	}, nil
}
