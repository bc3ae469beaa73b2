package egg

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/logger"
	"github.com/osse101/BabyEggBot_Go/internal/metrics"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// Partners resolves a user's spouse
type Partners interface {
	PartnerOf(userID string) (string, bool)
}

// View is one egg as seen at a point in time
type View struct {
	OwnerID    string      `json:"owner_id"`
	Egg        domain.Egg  `json:"egg"`
	Age        Age         `json:"age"`
	Countdowns []Countdown `json:"countdowns,omitempty"`
}

// StatusView combines the caller's egg with their partner's. Either may be nil.
type StatusView struct {
	Own       *View  `json:"own,omitempty"`
	PartnerID string `json:"partner_id,omitempty"`
	Partner   *View  `json:"partner,omitempty"`
}

// CareResult identifies the egg that received care
type CareResult struct {
	OwnerID string
	Egg     domain.Egg
}

// Service defines egg lifecycle operations
type Service interface {
	Create(ctx context.Context, ownerID string, gender domain.Gender, name string) (domain.Egg, error)
	HasEgg(ownerID string) bool
	Status(ctx context.Context, callerID string) StatusView
	Care(ctx context.Context, callerID, eggName string, action domain.CareAction) (CareResult, error)
	Revive(ctx context.Context, ownerID string) (domain.Egg, error)
	Disown(ctx context.Context, ownerID string) (domain.Egg, error)
	Backfill(ctx context.Context) (int, error)
}

type service struct {
	eggs     *store.Store[domain.Egg]
	partners Partners
	clock    clock.Clock
}

// NewService creates a new egg service
func NewService(eggs *store.Store[domain.Egg], partners Partners, clk clock.Clock) Service {
	return &service{
		eggs:     eggs,
		partners: partners,
		clock:    clk,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, gender domain.Gender, name string) (domain.Egg, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Egg{}, fmt.Errorf("%w: egg name is empty", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseGender(string(gender)); err != nil {
		return domain.Egg{}, err
	}

	var created domain.Egg
	err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
		if _, exists := m[ownerID]; exists {
			return domain.ErrEggAlreadyExists
		}
		created = domain.NewEgg(name, gender, s.clock.Now())
		m[ownerID] = created
		return nil
	})
	if err != nil {
		return domain.Egg{}, err
	}

	metrics.EggsCreated.Inc()
	log.Info(LogMsgEggCreated, "owner_id", ownerID, "egg", created.Name, "gender", created.Gender)
	return created, nil
}

func (s *service) HasEgg(ownerID string) bool {
	_, ok := s.eggs.Get(ownerID)
	return ok
}

// Status never fails. A failed write of a newly observed death is logged and the
// view still reports the egg as dead.
func (s *service) Status(ctx context.Context, callerID string) StatusView {
	log := logger.FromContext(ctx)
	now := s.clock.Now()

	var view StatusView
	owners := []string{callerID}
	if partnerID, ok := s.partners.PartnerOf(callerID); ok {
		view.PartnerID = partnerID
		owners = append(owners, partnerID)
	}

	var newlyDead []string
	views := make([]*View, len(owners))
	for i, ownerID := range owners {
		e, ok := s.eggs.Get(ownerID)
		if !ok {
			continue
		}
		if !e.IsDead && EvaluateDeath(e, now) {
			e.IsDead = true
			newlyDead = append(newlyDead, ownerID)
		}
		v := &View{OwnerID: ownerID, Egg: e, Age: AgeOf(e, now)}
		if !e.IsDead {
			v.Countdowns = Countdowns(e, now)
		}
		views[i] = v
	}
	view.Own = views[0]
	if len(views) > 1 {
		view.Partner = views[1]
	}

	if len(newlyDead) > 0 {
		var marked []string
		err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
			for _, ownerID := range newlyDead {
				e, ok := m[ownerID]
				if !ok || e.IsDead || !EvaluateDeath(e, now) {
					continue
				}
				e.IsDead = true
				m[ownerID] = e
				marked = append(marked, ownerID)
			}
			return nil
		})
		if err != nil {
			log.Error(LogMsgPersistDeath, "owners", newlyDead, "error", err)
		} else {
			for _, ownerID := range marked {
				metrics.EggsDied.Inc()
				log.Info(LogMsgEggDied, "owner_id", ownerID)
			}
		}
	}

	return view
}

func (s *service) Care(ctx context.Context, callerID, eggName string, action domain.CareAction) (CareResult, error) {
	log := logger.FromContext(ctx)

	eggName = strings.TrimSpace(eggName)
	if eggName == "" {
		return CareResult{}, fmt.Errorf("%w: egg name is empty", domain.ErrInvalidInput)
	}

	candidates := []string{callerID}
	if partnerID, ok := s.partners.PartnerOf(callerID); ok {
		candidates = append(candidates, partnerID)
	}

	var result CareResult
	err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
		for _, ownerID := range candidates {
			e, ok := m[ownerID]
			if !ok || !sameName(e.Name, eggName) {
				continue
			}
			e.IsDead = false
			e.SetLastCared(action, s.clock.Now())
			m[ownerID] = e
			result = CareResult{OwnerID: ownerID, Egg: e}
			return nil
		}
		return fmt.Errorf("%w: %q", domain.ErrEggNotFound, eggName)
	})
	if err != nil {
		return CareResult{}, err
	}

	metrics.CareActions.WithLabelValues(string(action)).Inc()
	log.Info(LogMsgEggCared, "caller_id", callerID, "owner_id", result.OwnerID, "action", action)
	return result, nil
}

// Revive evaluates death first so an egg that died unobserved can be revived.
// Only the creation time is reset; care timers keep their values.
func (s *service) Revive(ctx context.Context, ownerID string) (domain.Egg, error) {
	log := logger.FromContext(ctx)
	now := s.clock.Now()

	var revived domain.Egg
	err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
		e, ok := m[ownerID]
		if !ok {
			return domain.ErrEggNotFound
		}
		if !e.IsDead && !EvaluateDeath(e, now) {
			return domain.ErrEggNotDead
		}
		if e.HasRevived {
			return domain.ErrAlreadyRevived
		}
		e.CreatedAt = now
		e.IsDead = false
		e.HasRevived = true
		m[ownerID] = e
		revived = e
		return nil
	})
	if err != nil {
		return domain.Egg{}, err
	}

	metrics.EggsRevived.Inc()
	log.Info(LogMsgEggRevived, "owner_id", ownerID)
	return revived, nil
}

func (s *service) Disown(ctx context.Context, ownerID string) (domain.Egg, error) {
	var removed domain.Egg
	err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
		e, ok := m[ownerID]
		if !ok {
			return domain.ErrEggNotFound
		}
		removed = e
		delete(m, ownerID)
		return nil
	})
	if err != nil {
		return domain.Egg{}, err
	}

	metrics.EggsDisowned.Inc()
	logger.FromContext(ctx).Info(LogMsgEggDisowned, "owner_id", ownerID)
	return removed, nil
}

// Backfill stamps eggs that have no creation time with the current time and
// rewrites the egg snapshot. Nameless records, which old snapshots contain for
// users who never created an egg, are dropped. It runs once at startup.
func (s *service) Backfill(ctx context.Context) (int, error) {
	now := s.clock.Now()
	fixed, pruned := 0, 0
	err := s.eggs.Update(ctx, func(m map[string]domain.Egg) error {
		for ownerID, e := range m {
			if strings.TrimSpace(e.Name) == "" {
				delete(m, ownerID)
				pruned++
				continue
			}
			if e.CreatedAt.IsZero() {
				e.CreatedAt = now
				m[ownerID] = e
				fixed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBackfillFailed, err)
	}
	if fixed > 0 || pruned > 0 {
		logger.FromContext(ctx).Info(LogMsgEggsBackfilled, "count", fixed, "pruned", pruned)
	}
	return fixed, nil
}

// sameName compares egg names under Unicode case folding. Runs of whitespace
// compare equal, since command arguments arrive re-joined with single spaces.
func sameName(a, b string) bool {
	fold := cases.Fold()
	return normalizeName(fold.String(a)) == normalizeName(fold.String(b))
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
