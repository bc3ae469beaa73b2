package economy

// Log messages
const (
	LogMsgDailyClaimed        = "Daily reward claimed"
	LogMsgDailyRollbackFailed = "Failed to take back daily reward after claim write failed"
	LogMsgItemPurchased       = "Item purchased"
	LogMsgRefundFailed        = "Failed to refund purchase after inventory write failed"
	LogMsgCoinsShared         = "Coins shared"
	LogMsgCoinsAdjusted       = "Coins adjusted by owner"
	LogMsgBetSettled          = "Bet settled"
	LogMsgRobberyAttempt      = "Robbery attempted"
	LogMsgUnauthorizedUse     = "Unauthorized privileged command"
)

// Error messages
const (
	ErrFmtInsufficientFunds = "%s: need %d coins, have %d"
	ErrMsgUnknownItemFmt    = "%w: %q"
	ErrMsgPurchaseFailed    = "purchase failed: %w"
	ErrMsgSelfRobbery       = "%w: cannot rob yourself"
	ErrMsgNonPositiveFmt    = "%w: %d"
)
