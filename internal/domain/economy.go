package domain

// AdjustDirection selects between an owner grant and an owner removal
type AdjustDirection string

const (
	AdjustAdd    AdjustDirection = "add"
	AdjustRemove AdjustDirection = "remove"
)

// BetOutcome names a branch of the betting table
type BetOutcome string

const (
	BetLose      BetOutcome = "lose"
	BetBreakEven BetOutcome = "breakeven"
	BetDouble    BetOutcome = "double"
	BetTriple    BetOutcome = "triple"
)

// BetResult is returned from a settled bet
type BetResult struct {
	Outcome    BetOutcome `json:"outcome"`
	Amount     int        `json:"amount"`
	Delta      int        `json:"delta"`
	NewBalance int        `json:"new_balance"`
}

// RobResult is returned from a robbery attempt
type RobResult struct {
	Success    bool `json:"success"`
	Coins      int  `json:"coins"`
	NewBalance int  `json:"new_balance"`
}

// TransferResult is returned from a peer transfer or owner adjustment
type TransferResult struct {
	Amount           int `json:"amount"`
	SenderBalance    int `json:"sender_balance"`
	RecipientBalance int `json:"recipient_balance"`
}
