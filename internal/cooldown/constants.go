package cooldown

import "time"

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute
)

// Error Message Constants
const (
	ErrMsgCheckCooldownFailed  = "failed to check cooldown: %w"
	ErrMsgUpdateCooldownFailed = "failed to update cooldown: %w"
	ErrMsgResetCooldownFailed  = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed    = "failed to get last used: %w"
	ErrMsgUnknownActionFmt     = "no cooldown store registered for action %q"
)

// Log Message Constants
const (
	LogMsgDevModeBypass    = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgCooldownEnforced = "Cooldown enforced successfully"
)

// Error Message Format Strings (for ErrOnCooldown.Error())
const (
	ErrFmtCooldownWithHours   = "You can %s again in %dh %dm"
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

// Time Conversion Constants
const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
)
