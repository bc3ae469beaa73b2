package egg

import (
	"time"

	"github.com/osse101/BabyEggBot_Go/internal/domain"
)

// EvaluateDeath reports whether any single care action of egg has gone unattended
// for at least domain.DeathThreshold at now. Actions with no recorded time are
// skipped. It does not consult or change IsDead.
func EvaluateDeath(egg domain.Egg, now time.Time) bool {
	for _, action := range domain.CareActions {
		last := egg.LastCared(action)
		if last.IsZero() {
			continue
		}
		if now.Sub(last) >= domain.DeathThreshold {
			return true
		}
	}
	return false
}

// Countdown is the time left before one care action would kill the egg
type Countdown struct {
	Action    domain.CareAction `json:"action"`
	Remaining time.Duration     `json:"remaining"`
}

// Countdowns returns the remaining time per care action in display order.
// Actions already at or past the threshold report zero; actions never recorded
// are left out.
func Countdowns(egg domain.Egg, now time.Time) []Countdown {
	out := make([]Countdown, 0, len(domain.CareActions))
	for _, action := range domain.CareActions {
		last := egg.LastCared(action)
		if last.IsZero() {
			continue
		}
		remaining := domain.DeathThreshold - now.Sub(last)
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, Countdown{Action: action, Remaining: remaining})
	}
	return out
}

// Age breaks the elapsed time since creation into whole days, hours and minutes
type Age struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// AgeOf returns the age of egg at now. Clock skew yields a zero age.
func AgeOf(egg domain.Egg, now time.Time) Age {
	d := now.Sub(egg.CreatedAt)
	if d < 0 {
		d = 0
	}
	return Age{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d%(24*time.Hour)) / int(time.Hour),
		Minutes: int(d%time.Hour) / int(time.Minute),
	}
}
