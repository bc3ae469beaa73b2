package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/config"
	"github.com/osse101/BabyEggBot_Go/internal/database"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Stores holds the five persisted mappings. Each is loaded once at startup
// and flushed on shutdown.
type Stores struct {
	Eggs      *store.Store[domain.Egg]
	Marriages *store.Store[string]
	LastClaim *store.Store[time.Time]
	Coins     *store.Store[int]
	Inventory *store.Store[[]string]
}

// All returns every store for flushing
func (s *Stores) All() []store.Flusher {
	return []store.Flusher{s.Eggs, s.Marriages, s.LastClaim, s.Coins, s.Inventory}
}

// OpenBackend selects the snapshot backend named by cfg.StorageDriver. The
// postgres backend applies its migrations before returning.
func OpenBackend(ctx context.Context, cfg *config.Config) (store.Backend, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverFile:
		backend, err := store.NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFileBackendFailed, err)
		}
		slog.Info(LogMsgBackendSelected, "driver", cfg.StorageDriver, "dir", cfg.DataDir)
		return backend, nil

	case config.StorageDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL,
			database.DefaultMaxConnections,
			database.DefaultMaxConnIdleTime,
			database.DefaultMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgDatabaseFailed, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgDatabaseFailed, err)
		}
		slog.Info(LogMsgBackendSelected, "driver", cfg.StorageDriver)
		return store.NewPostgresBackend(pool), nil

	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StorageDriver)
	}
}

// OpenStores loads every mapping from backend. Any unreadable snapshot aborts.
func OpenStores(ctx context.Context, backend store.Backend) (*Stores, error) {
	var (
		s   Stores
		err error
	)
	if s.Eggs, err = store.Open[domain.Egg](ctx, backend, domain.StoreEggs); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStoreFailed, domain.StoreEggs, err)
	}
	if s.Marriages, err = store.Open[string](ctx, backend, domain.StoreMarriages); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStoreFailed, domain.StoreMarriages, err)
	}
	if s.LastClaim, err = store.Open[time.Time](ctx, backend, domain.StoreLastClaim); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStoreFailed, domain.StoreLastClaim, err)
	}
	if s.Coins, err = store.Open[int](ctx, backend, domain.StoreCoins); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStoreFailed, domain.StoreCoins, err)
	}
	if s.Inventory, err = store.Open[[]string](ctx, backend, domain.StoreInventory); err != nil {
		return nil, fmt.Errorf(ErrMsgOpenStoreFailed, domain.StoreInventory, err)
	}

	slog.Info(LogMsgStoresOpened,
		"eggs", s.Eggs.Len(),
		"marriages", s.Marriages.Len(),
		"coins", s.Coins.Len(),
		"inventory", s.Inventory.Len())
	return &s, nil
}
