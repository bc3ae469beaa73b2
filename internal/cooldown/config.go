package cooldown

import (
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses every cooldown
	DevMode bool

	// Overrides replaces the built-in duration of an action
	Overrides map[string]time.Duration
}

// builtinDurations are the cooldowns each tracked action ships with
var builtinDurations = map[string]time.Duration{
	domain.ActionDaily: domain.DailyCooldown,
}

// Duration returns the cooldown for action. Untracked actions get DefaultCooldownDuration.
func (c Config) Duration(action string) time.Duration {
	if d, ok := c.Overrides[action]; ok {
		return d
	}
	if d, ok := builtinDurations[action]; ok {
		return d
	}
	return DefaultCooldownDuration
}
