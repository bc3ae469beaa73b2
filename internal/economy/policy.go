package economy

import (
	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

// NegativeBalancePolicy decides what happens when a penalty exceeds a balance
type NegativeBalancePolicy int

const (
	// AllowNegative lets balances drop below zero
	AllowNegative NegativeBalancePolicy = iota
	// ClampAtZero floors every resulting balance at zero
	ClampAtZero
)

func (p NegativeBalancePolicy) String() string {
	if p == ClampAtZero {
		return "clamp"
	}
	return "allow"
}

// apply returns balance+delta under the policy
func (p NegativeBalancePolicy) apply(balance, delta int) int {
	next := balance + delta
	if p == ClampAtZero && next < 0 {
		return 0
	}
	return next
}

// BetBranch is one row of the betting table. Delta is Multiplier*amount.
type BetBranch struct {
	Outcome    domain.BetOutcome
	Weight     int
	Multiplier int
}

// BetOutcomes is the betting table. Triple carries zero weight and is never drawn.
var BetOutcomes = []BetBranch{
	{Outcome: domain.BetLose, Weight: 1, Multiplier: -1},
	{Outcome: domain.BetBreakEven, Weight: 1, Multiplier: 0},
	{Outcome: domain.BetDouble, Weight: 1, Multiplier: 2},
	{Outcome: domain.BetTriple, Weight: 0, Multiplier: 3},
}

func betWeights(table []BetBranch) []int {
	weights := make([]int, len(table))
	for i, b := range table {
		weights[i] = b.Weight
	}
	return weights
}

// RobFailureChance is the probability that a robbery fails
const RobFailureChance = 0.5
