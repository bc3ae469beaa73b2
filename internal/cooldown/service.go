package cooldown

import (
	"context"
	"fmt"
	"math"
	"time"
)

// Service manages action cooldowns for users
type Service interface {
	// CheckCooldown checks if a user's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, userID, action string) (bool, time.Duration, error)

	// EnforceCooldown atomically checks cooldown and executes action if allowed.
	// The cooldown is only recorded when fn succeeds.
	EnforceCooldown(ctx context.Context, userID, action string, fn func() error) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, userID, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, userID, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	hours := int(e.Remaining.Hours())
	minutes := int(e.Remaining.Minutes()) % MinutesPerHour
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	switch {
	case hours > 0:
		return fmt.Sprintf(ErrFmtCooldownWithHours, e.Action, hours, minutes)
	case minutes > 0:
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	default:
		return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
	}
}

// HoursRemaining rounds the remaining time up to whole hours
func (e ErrOnCooldown) HoursRemaining() int {
	return int(math.Ceil(e.Remaining.Hours()))
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}

// checkCooldownInternal reports whether lastUsed+duration is still in the future at now
func checkCooldownInternal(now time.Time, lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastUsed)
	if elapsed >= duration {
		return false, 0
	}
	return true, duration - elapsed
}
