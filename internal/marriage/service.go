package marriage

import (
	"context"
	"sort"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/metrics"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Confirmer asks the proposal target for an answer. It returns true for yes,
// false for no, or an error such as domain.ErrPromptTimeout.
type Confirmer func(ctx context.Context) (bool, error)

// Pair is one marriage, with A < B
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Service maintains the symmetric marriage registry
type Service interface {
	Propose(ctx context.Context, callerID, targetID string, ask Confirmer) error
	Breakup(ctx context.Context, callerID, targetID string) error
	PartnerOf(userID string) (string, bool)
	Pairs() []Pair
}

type service struct {
	marriages *store.Store[string]
}

// NewService creates a new marriage service
func NewService(marriages *store.Store[string]) Service {
	return &service{marriages: marriages}
}

func (s *service) checkEligible(callerID, targetID string, m func(string) (string, bool)) error {
	if callerID == targetID {
		return domain.ErrSelfMarriage
	}
	if _, married := m(callerID); married {
		return domain.ErrAlreadyMarried
	}
	if _, married := m(targetID); married {
		return domain.ErrPartnerAlreadyMarried
	}
	return nil
}

// Propose validates both parties, then waits on ask outside of any lock.
// Eligibility is checked again before the pair is written.
func (s *service) Propose(ctx context.Context, callerID, targetID string, ask Confirmer) error {
	log := logger.FromContext(ctx)

	if err := s.checkEligible(callerID, targetID, s.marriages.Get); err != nil {
		return err
	}

	accepted, err := ask(ctx)
	if err != nil {
		log.Info(LogMsgProposalLapsed, "caller_id", callerID, "target_id", targetID, "error", err)
		return err
	}
	if !accepted {
		log.Info(LogMsgProposalDeclined, "caller_id", callerID, "target_id", targetID)
		return domain.ErrProposalDeclined
	}

	err = s.marriages.Update(ctx, func(m map[string]string) error {
		lookup := func(id string) (string, bool) {
			p, ok := m[id]
			return p, ok
		}
		if err := s.checkEligible(callerID, targetID, lookup); err != nil {
			return err
		}
		m[callerID] = targetID
		m[targetID] = callerID
		return nil
	})
	if err != nil {
		return err
	}

	metrics.Marriages.Inc()
	log.Info(LogMsgMarried, "caller_id", callerID, "target_id", targetID)
	return nil
}

func (s *service) Breakup(ctx context.Context, callerID, targetID string) error {
	err := s.marriages.Update(ctx, func(m map[string]string) error {
		if partner, ok := m[callerID]; !ok || partner != targetID {
			return domain.ErrNotMarried
		}
		delete(m, callerID)
		delete(m, targetID)
		return nil
	})
	if err != nil {
		return err
	}

	metrics.Breakups.Inc()
	logger.FromContext(ctx).Info(LogMsgBrokeUp, "caller_id", callerID, "target_id", targetID)
	return nil
}

func (s *service) PartnerOf(userID string) (string, bool) {
	return s.marriages.Get(userID)
}

// Pairs lists every marriage once, sorted by the lower id
func (s *service) Pairs() []Pair {
	snapshot := s.marriages.Snapshot()
	pairs := make([]Pair, 0, len(snapshot)/2)
	for a, b := range snapshot {
		if a < b {
			pairs = append(pairs, Pair{A: a, B: b})
		} else if back, ok := snapshot[b]; !ok || back != a {
			// Unreciprocated entry from an old snapshot
			pairs = append(pairs, Pair{A: a, B: b})
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}
