package egg

// Display formats
const (
	AgeFormat              = "%s, %s, and %s"
	CountdownFormat        = "%s and %s until %s"
	CountdownMinutesFormat = "%s until %s"

	WordDay    = "day"
	WordHour   = "hour"
	WordMinute = "minute"
)

// Log messages
const (
	LogMsgEggCreated     = "Egg created"
	LogMsgEggDied        = "Egg died of neglect"
	LogMsgEggCared       = "Egg cared for"
	LogMsgEggRevived     = "Egg revived"
	LogMsgEggDisowned    = "Egg disowned"
	LogMsgEggsBackfilled = "Backfilled missing egg creation times"
	LogMsgPersistDeath   = "Failed to persist egg death"
)

// Error messages
const (
	ErrMsgBackfillFailed = "failed to backfill eggs: %w"
)
