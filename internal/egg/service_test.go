package egg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BabyEggBot_Go/internal/clock"
	"github.com/osse101/BabyEggBot_Go/internal/domain"
	"github.com/osse101/BabyEggBot_Go/internal/store"
)

// staticPartners is a fixed marriage table for tests
type staticPartners map[string]string

func (p staticPartners) PartnerOf(userID string) (string, bool) {
	id, ok := p[userID]
	return id, ok
}

type fixture struct {
	svc     Service
	clock   *clock.SimulatedClock
	eggs    *store.Store[domain.Egg]
	backend *store.MemoryBackend
}

func newFixture(t *testing.T, partners staticPartners) *fixture {
	t.Helper()
	backend := store.NewMemoryBackend()
	eggs, err := store.Open[domain.Egg](context.Background(), backend, domain.StoreEggs)
	require.NoError(t, err)
	if partners == nil {
		partners = staticPartners{}
	}
	clk := clock.NewSimulatedClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	return &fixture{
		svc:     NewService(eggs, partners, clk),
		clock:   clk,
		eggs:    eggs,
		backend: backend,
	}
}

func (f *fixture) setAllCare(t *testing.T, ownerID string, at time.Time) {
	t.Helper()
	require.NoError(t, f.eggs.Update(context.Background(), func(m map[string]domain.Egg) error {
		e := m[ownerID]
		for _, a := range domain.CareActions {
			e.SetLastCared(a, at)
		}
		m[ownerID] = e
		return nil
	}))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		gender  domain.Gender
		eggName string
		wantErr error
	}{
		{"valid", domain.GenderMale, "Spot", nil},
		{"invalid gender", domain.Gender("robot"), "Spot", domain.ErrInvalidGender},
		{"empty name", domain.GenderFemale, "   ", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil)
			egg, err := f.svc.Create(ctx, "u1", tt.gender, tt.eggName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, f.svc.HasEgg("u1"))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Spot", egg.Name)
			assert.Equal(t, f.clock.Now(), egg.CreatedAt)
			for _, a := range domain.CareActions {
				assert.Equal(t, f.clock.Now(), egg.LastCared(a))
			}
			assert.False(t, egg.IsDead)
			assert.True(t, f.svc.HasEgg("u1"))
			assert.Equal(t, 1, f.backend.Saves(domain.StoreEggs))
		})
	}

	t.Run("at most one egg per user", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, "u1", domain.GenderFemale, "Dot")
		assert.ErrorIs(t, err, domain.ErrEggAlreadyExists)

		e, _ := f.eggs.Get("u1")
		assert.Equal(t, "Spot", e.Name)
	})
}

func TestStatus_FreshEgg(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
	require.NoError(t, err)

	view := f.svc.Status(ctx, "u1")
	require.NotNil(t, view.Own)
	assert.Nil(t, view.Partner)
	assert.Equal(t, Age{}, view.Own.Age)
	assert.Equal(t, "0 days, 0 hours, and 0 minutes", FormatAge(view.Own.Age))
	require.Len(t, view.Own.Countdowns, len(domain.CareActions))
	for _, c := range view.Own.Countdowns {
		assert.Equal(t, 72*time.Hour, c.Remaining)
	}
}

func TestStatus_NoEggs(t *testing.T) {
	f := newFixture(t, staticPartners{"u1": "u2", "u2": "u1"})
	view := f.svc.Status(context.Background(), "u1")
	assert.Nil(t, view.Own)
	assert.Nil(t, view.Partner)
	assert.Equal(t, "u2", view.PartnerID)
}

func TestStatus_MarksDeathAndCareRevives(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
	require.NoError(t, err)

	stale := f.clock.HoursAgo(73)
	f.setAllCare(t, "u1", stale)

	view := f.svc.Status(ctx, "u1")
	require.NotNil(t, view.Own)
	assert.True(t, view.Own.Egg.IsDead)
	assert.Empty(t, view.Own.Countdowns)

	stored, _ := f.eggs.Get("u1")
	assert.True(t, stored.IsDead, "death must be persisted")

	res, err := f.svc.Care(ctx, "u1", "spot", domain.CareFeed)
	require.NoError(t, err)
	assert.Equal(t, "u1", res.OwnerID)
	assert.False(t, res.Egg.IsDead)
	assert.Equal(t, f.clock.Now(), res.Egg.LastFed)
	for _, a := range []domain.CareAction{domain.CareHydrate, domain.CarePlay, domain.CareWash, domain.CareCuddle} {
		assert.Equal(t, stale, res.Egg.LastCared(a), string(a))
	}
}

func TestEvaluateDeath_Boundary(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	egg := domain.NewEgg("Spot", domain.GenderMale, now.Add(-71*time.Hour))

	tests := []struct {
		name    string
		lastWet time.Time
		want    bool
	}{
		{"just under threshold", now.Add(-72*time.Hour + time.Second), false},
		{"exactly threshold", now.Add(-72 * time.Hour), true},
		{"over threshold", now.Add(-80 * time.Hour), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := egg
			e.LastWashed = tt.lastWet
			assert.Equal(t, tt.want, EvaluateDeath(e, now))
		})
	}

	assert.False(t, EvaluateDeath(egg, now))
}

func TestEvaluateDeath_SkipsUnrecordedCare(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	egg := domain.NewEgg("Spot", domain.GenderMale, now.Add(-10*time.Hour))
	egg.LastCuddled = time.Time{}

	assert.False(t, EvaluateDeath(egg, now))

	got := Countdowns(egg, now)
	assert.Len(t, got, len(domain.CareActions)-1)
	for _, c := range got {
		assert.NotEqual(t, domain.CareCuddle, c.Action)
	}

	egg.LastFed = now.Add(-72 * time.Hour)
	assert.True(t, EvaluateDeath(egg, now), "recorded timers still count")
}

func TestCare(t *testing.T) {
	ctx := context.Background()

	t.Run("name with repeated spaces", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Mr  Egg")
		require.NoError(t, err)

		for _, typed := range []string{"Mr Egg", "mr  egg", " MR EGG "} {
			res, err := f.svc.Care(ctx, "u1", typed, domain.CareFeed)
			require.NoError(t, err, typed)
			assert.Equal(t, "Mr  Egg", res.Egg.Name)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
		require.NoError(t, err)
		_, err = f.svc.Care(ctx, "u1", "Rex", domain.CarePlay)
		assert.ErrorIs(t, err, domain.ErrEggNotFound)
	})

	t.Run("partner egg", func(t *testing.T) {
		f := newFixture(t, staticPartners{"a": "b", "b": "a"})
		_, err := f.svc.Create(ctx, "a", domain.GenderFemale, "Ünïcode Egg")
		require.NoError(t, err)
		f.clock.AdvanceHours(5)

		res, err := f.svc.Care(ctx, "b", "üNÏCODE egg", domain.CareCuddle)
		require.NoError(t, err)
		assert.Equal(t, "a", res.OwnerID)
		assert.Equal(t, f.clock.Now(), res.Egg.LastCuddled)
	})

	t.Run("own egg wins over partner egg with same name", func(t *testing.T) {
		f := newFixture(t, staticPartners{"a": "b", "b": "a"})
		_, err := f.svc.Create(ctx, "a", domain.GenderFemale, "Twin")
		require.NoError(t, err)
		_, err = f.svc.Create(ctx, "b", domain.GenderMale, "Twin")
		require.NoError(t, err)

		res, err := f.svc.Care(ctx, "b", "twin", domain.CareWash)
		require.NoError(t, err)
		assert.Equal(t, "b", res.OwnerID)
	})

	t.Run("unmarried user cannot care for others", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "a", domain.GenderFemale, "Spot")
		require.NoError(t, err)
		_, err = f.svc.Care(ctx, "b", "Spot", domain.CareFeed)
		assert.ErrorIs(t, err, domain.ErrEggNotFound)
	})
}

func TestRevive(t *testing.T) {
	ctx := context.Background()

	t.Run("no egg", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Revive(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrEggNotFound)
	})

	t.Run("alive egg", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
		require.NoError(t, err)
		_, err = f.svc.Revive(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrEggNotDead)
	})

	t.Run("once per lifetime", func(t *testing.T) {
		f := newFixture(t, nil)
		_, err := f.svc.Create(ctx, "u1", domain.GenderMale, "Spot")
		require.NoError(t, err)

		// Dies unobserved; revive evaluates death itself
		f.clock.AdvanceHours(80)
		revived, err := f.svc.Revive(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, revived.HasRevived)
		assert.False(t, revived.IsDead)
		assert.Equal(t, f.clock.Now(), revived.CreatedAt)

		// Care keeps it alive, then it dies again
		_, err = f.svc.Care(ctx, "u1", "Spot", domain.CareFeed)
		require.NoError(t, err)
		f.clock.AdvanceHours(100)
		assert.True(t, f.svc.Status(ctx, "u1").Own.Egg.IsDead)

		_, err = f.svc.Revive(ctx, "u1")
		assert.ErrorIs(t, err, domain.ErrAlreadyRevived)
	})
}

func TestDisown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, staticPartners{"a": "b", "b": "a"})

	_, err := f.svc.Disown(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrEggNotFound)

	_, err = f.svc.Create(ctx, "a", domain.GenderMale, "Spot")
	require.NoError(t, err)
	removed, err := f.svc.Disown(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Spot", removed.Name)
	assert.False(t, f.svc.HasEgg("a"))

	// A fresh egg is allowed afterwards
	_, err = f.svc.Create(ctx, "a", domain.GenderMale, "Spot II")
	assert.NoError(t, err)
}

func TestBackfill(t *testing.T) {
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	backend.Put(domain.StoreEggs, []byte(`{
		"u1": {"eggName": "Old", "gender": "male", "lastFed": "2024-04-30T08:00:00Z"},
		"u2": {"eggName": "New", "gender": "female", "eggCreationTime": "2024-04-29T08:00:00Z"},
		"u3": {"hasRevived": false}
	}`))
	eggs, err := store.Open[domain.Egg](ctx, backend, domain.StoreEggs)
	require.NoError(t, err)

	clk := clock.NewSimulatedClock(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	svc := NewService(eggs, staticPartners{}, clk)

	fixed, err := svc.Backfill(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fixed)

	old, _ := eggs.Get("u1")
	assert.Equal(t, clk.Now(), old.CreatedAt)
	kept, _ := eggs.Get("u2")
	assert.Equal(t, time.Date(2024, 4, 29, 8, 0, 0, 0, time.UTC), kept.CreatedAt)
	assert.False(t, svc.HasEgg("u3"))
	assert.Equal(t, 1, backend.Saves(domain.StoreEggs))
}
