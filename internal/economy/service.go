package economy

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/BabyEggBot_Go/internal/catalog"
	"github.com/osse101/BabyEggBot_Go/internal/cooldown"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/inventory"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/metrics"
	"github.com/osse101/BabyEggBot_Go/internal/store"
	"github.com/osse101/BabyEggBot_Go/internal/utils"
)

// InsufficientFundsError matches domain.ErrInsufficientFunds and carries the shortfall
type InsufficientFundsError struct {
	Need int
	Have int
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf(ErrFmtInsufficientFunds, domain.ErrMsgInsufficientFunds, e.Need, e.Have)
}

func (e InsufficientFundsError) Unwrap() error {
	return domain.ErrInsufficientFunds
}

// PurchaseResult is returned from a successful purchase
type PurchaseResult struct {
	Item       catalog.Entry `json:"item"`
	NewBalance int           `json:"new_balance"`
}

// Config holds ledger configuration
type Config struct {
	OwnerID string
	Policy  NegativeBalancePolicy
}

// Service defines the coin ledger operations
type Service interface {
	ClaimDaily(ctx context.Context, userID string) (int, error)
	Balance(userID string) int
	Purchase(ctx context.Context, userID string, kind catalog.Kind, itemID string) (PurchaseResult, error)
	Transfer(ctx context.Context, senderID, recipientID string, amount int) (domain.TransferResult, error)
	Adjust(ctx context.Context, callerID, targetID string, amount int, direction domain.AdjustDirection) (int, error)
	Bet(ctx context.Context, userID string, amount int) (domain.BetResult, error)
	Rob(ctx context.Context, robberID, targetID string, amount int) (domain.RobResult, error)
}

type service struct {
	coins     *store.Store[int]
	cooldowns cooldown.Service
	inventory inventory.Service
	config    Config

	// mu serialises read-modify-write sequences that span coins, lastClaim and inventory
	mu sync.Mutex

	rng func(min, max int) int // inclusive
	rnd func() float64
}

// NewService creates a new ledger
func NewService(coins *store.Store[int], cooldowns cooldown.Service, inv inventory.Service, config Config) Service {
	if config.OwnerID == "" {
		config.OwnerID = domain.DefaultOwnerID
	}
	return &service{
		coins:     coins,
		cooldowns: cooldowns,
		inventory: inv,
		config:    config,
		rng:       utils.RandomInt,
		rnd:       utils.RandomFloat,
	}
}

func (s *service) Balance(userID string) int {
	balance, _ := s.coins.Get(userID)
	return balance
}

// ClaimDaily credits the daily reward and records the claim time. If the claim
// time cannot be recorded the credit is taken back.
func (s *service) ClaimDaily(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		amount   int
		credited bool
	)
	err := s.cooldowns.EnforceCooldown(ctx, userID, domain.ActionDaily, func() error {
		amount = s.rng(domain.DailyMinReward, domain.DailyMaxReward)
		if err := s.coins.Update(ctx, func(m map[string]int) error {
			m[userID] += amount
			return nil
		}); err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		// The claim time was not recorded, so the credit must not stick either
		if credited {
			if refundErr := s.coins.Update(ctx, func(m map[string]int) error {
				m[userID] -= amount
				return nil
			}); refundErr != nil {
				log.Error(LogMsgDailyRollbackFailed, "user_id", userID, "amount", amount, "error", refundErr)
			}
		}
		return 0, err
	}

	metrics.CoinsMinted.WithLabelValues(metrics.SourceDaily).Add(float64(amount))
	log.Info(LogMsgDailyClaimed, "user_id", userID, "amount", amount)
	return amount, nil
}

// Purchase debits coins before appending to the inventory. If the inventory
// write fails the debit is refunded.
func (s *service) Purchase(ctx context.Context, userID string, kind catalog.Kind, itemID string) (PurchaseResult, error) {
	log := logger.FromContext(ctx)

	entry, ok := catalog.Lookup(kind, itemID)
	if !ok {
		return PurchaseResult{}, fmt.Errorf(ErrMsgUnknownItemFmt, domain.ErrUnknownItem, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var balance int
	err := s.coins.Update(ctx, func(m map[string]int) error {
		have := m[userID]
		if have < entry.Price {
			return InsufficientFundsError{Need: entry.Price, Have: have}
		}
		balance = have - entry.Price
		m[userID] = balance
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	if err := s.inventory.Add(ctx, userID, entry.ID); err != nil {
		if refundErr := s.coins.Update(ctx, func(m map[string]int) error {
			m[userID] += entry.Price
			return nil
		}); refundErr != nil {
			log.Error(LogMsgRefundFailed, "user_id", userID, "item", entry.ID, "error", refundErr)
		}
		return PurchaseResult{}, fmt.Errorf(ErrMsgPurchaseFailed, err)
	}

	metrics.ItemsPurchased.WithLabelValues(string(catalog.KindOf(entry.ID))).Inc()
	metrics.CoinsBurned.WithLabelValues(metrics.SourcePurchase).Add(float64(entry.Price))
	log.Info(LogMsgItemPurchased, "user_id", userID, "item", entry.ID, "price", entry.Price, "balance", balance)
	return PurchaseResult{Item: entry, NewBalance: balance}, nil
}

func (s *service) Transfer(ctx context.Context, senderID, recipientID string, amount int) (domain.TransferResult, error) {
	if amount <= 0 {
		return domain.TransferResult{}, fmt.Errorf(ErrMsgNonPositiveFmt, domain.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.TransferResult
	err := s.coins.Update(ctx, func(m map[string]int) error {
		have := m[senderID]
		if have < amount {
			return InsufficientFundsError{Need: amount, Have: have}
		}
		m[senderID] -= amount
		m[recipientID] += amount
		result = domain.TransferResult{
			Amount:           amount,
			SenderBalance:    m[senderID],
			RecipientBalance: m[recipientID],
		}
		return nil
	})
	if err != nil {
		return domain.TransferResult{}, err
	}

	logger.FromContext(ctx).Info(LogMsgCoinsShared, "sender_id", senderID, "recipient_id", recipientID, "amount", amount)
	return result, nil
}

// Adjust grants or removes coins. Only the configured owner may call it.
func (s *service) Adjust(ctx context.Context, callerID, targetID string, amount int, direction domain.AdjustDirection) (int, error) {
	log := logger.FromContext(ctx)

	if callerID != s.config.OwnerID {
		log.Warn(LogMsgUnauthorizedUse, "caller_id", callerID, "direction", direction)
		return 0, domain.ErrUnauthorized
	}
	if amount <= 0 {
		return 0, fmt.Errorf(ErrMsgNonPositiveFmt, domain.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var balance int
	err := s.coins.Update(ctx, func(m map[string]int) error {
		have := m[targetID]
		switch direction {
		case domain.AdjustAdd:
			balance = have + amount
		case domain.AdjustRemove:
			if have < amount {
				return InsufficientFundsError{Need: amount, Have: have}
			}
			balance = have - amount
		default:
			return fmt.Errorf("%w: unknown direction %q", domain.ErrInvalidInput, direction)
		}
		m[targetID] = balance
		return nil
	})
	if err != nil {
		return 0, err
	}

	if direction == domain.AdjustAdd {
		metrics.CoinsMinted.WithLabelValues(metrics.SourceGrant).Add(float64(amount))
	} else {
		metrics.CoinsBurned.WithLabelValues(metrics.SourceRemoval).Add(float64(amount))
	}
	log.Info(LogMsgCoinsAdjusted, "target_id", targetID, "direction", direction, "amount", amount, "balance", balance)
	return balance, nil
}

func (s *service) Bet(ctx context.Context, userID string, amount int) (domain.BetResult, error) {
	if amount <= 0 {
		return domain.BetResult{}, fmt.Errorf(ErrMsgNonPositiveFmt, domain.ErrInvalidAmount, amount)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.BetResult
	err := s.coins.Update(ctx, func(m map[string]int) error {
		have := m[userID]
		if have < amount {
			return InsufficientFundsError{Need: amount, Have: have}
		}
		idx := utils.WeightedIndex(betWeights(BetOutcomes), func(total int) int {
			return s.rng(0, total-1)
		})
		branch := BetOutcomes[idx]
		delta := branch.Multiplier * amount
		m[userID] = s.config.Policy.apply(have, delta)
		result = domain.BetResult{
			Outcome:    branch.Outcome,
			Amount:     amount,
			Delta:      delta,
			NewBalance: m[userID],
		}
		return nil
	})
	if err != nil {
		return domain.BetResult{}, err
	}

	switch {
	case result.Delta > 0:
		metrics.CoinsMinted.WithLabelValues(metrics.SourceBet).Add(float64(result.Delta))
	case result.Delta < 0:
		metrics.CoinsBurned.WithLabelValues(metrics.SourceBet).Add(float64(-result.Delta))
	}
	metrics.Bets.WithLabelValues(string(result.Outcome)).Inc()
	logger.FromContext(ctx).Info(LogMsgBetSettled, "user_id", userID, "amount", amount, "outcome", result.Outcome, "balance", result.NewBalance)
	return result, nil
}

// Rob flips a fair coin. A failed robbery costs the robber half the requested
// amount, rounded down; a successful one moves at most the target's balance.
func (s *service) Rob(ctx context.Context, robberID, targetID string, amount int) (domain.RobResult, error) {
	if amount <= 0 {
		return domain.RobResult{}, fmt.Errorf(ErrMsgNonPositiveFmt, domain.ErrInvalidAmount, amount)
	}
	if robberID == targetID {
		return domain.RobResult{}, fmt.Errorf(ErrMsgSelfRobbery, domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result domain.RobResult
	err := s.coins.Update(ctx, func(m map[string]int) error {
		targetBalance := m[targetID]
		if targetBalance <= 0 {
			return domain.ErrTargetHasNothing
		}
		robberBalance := m[robberID]
		if robberBalance <= 0 {
			return domain.ErrRobberHasNothing
		}

		if s.rnd() < RobFailureChance {
			penalty := amount / 2
			m[robberID] = s.config.Policy.apply(robberBalance, -penalty)
			result = domain.RobResult{Success: false, Coins: penalty, NewBalance: m[robberID]}
			return nil
		}

		stolen := min(amount, targetBalance)
		m[robberID] = robberBalance + stolen
		m[targetID] = targetBalance - stolen
		result = domain.RobResult{Success: true, Coins: stolen, NewBalance: m[robberID]}
		return nil
	})
	if err != nil {
		return domain.RobResult{}, err
	}

	outcome := "failure"
	if result.Success {
		outcome = "success"
	} else {
		metrics.CoinsBurned.WithLabelValues(metrics.SourceRob).Add(float64(result.Coins))
	}
	metrics.Robberies.WithLabelValues(outcome).Inc()
	logger.FromContext(ctx).Info(LogMsgRobberyAttempt, "robber_id", robberID, "target_id", targetID, "amount", amount, "result", outcome, "coins", result.Coins)
	return result, nil
}
