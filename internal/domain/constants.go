package domain

import "time"

// Egg lifecycle
const (
	// DeathThreshold is how long any single care action may be neglected before the egg dies
	DeathThreshold = 72 * time.Hour
)

// Economy
const (
	DailyCooldown  = 24 * time.Hour
	DailyMinReward = 50
	DailyMaxReward = 200
)

// Cooldown action names
const (
	ActionDaily = "daily"
)

// Store names. These are also the snapshot file names on disk.
const (
	StoreEggs      = "eggs"
	StoreMarriages = "marriages"
	StoreLastClaim = "lastClaim"
	StoreCoins     = "coins"
	StoreInventory = "inventory"
)

// DefaultOwnerID is the privileged user allowed to grant and remove coins
const DefaultOwnerID = "532707705002000386"

// DefaultPromptTimeout bounds every interactive prompt
const DefaultPromptTimeout = 15 * time.Second
