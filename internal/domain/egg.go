package domain

import (
	"fmt"
	"strings"
	"time"
)

// Gender is the gender chosen for an egg at creation time
type Gender string

const (
	GenderMale      Gender = "male"
	GenderFemale    Gender = "female"
	GenderNonBinary Gender = "non-binary"
)

// Genders lists the accepted genders in prompt order
var Genders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

// ParseGender normalizes user input into a Gender
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Genders {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// CareAction is one of the five independent care timers of an egg
type CareAction string

const (
	CareFeed    CareAction = "feed"
	CareHydrate CareAction = "hydrate"
	CarePlay    CareAction = "play"
	CareWash    CareAction = "wash"
	CareCuddle  CareAction = "cuddle"
)

// CareActions lists every care action in display order
var CareActions = []CareAction{CareFeed, CareHydrate, CarePlay, CareWash, CareCuddle}

// ParseCareAction maps a command word such as "feed" to its CareAction
func ParseCareAction(s string) (CareAction, bool) {
	a := CareAction(strings.ToLower(s))
	for _, known := range CareActions {
		if a == known {
			return a, true
		}
	}
	return "", false
}

// PastTense returns the verb used in care confirmations
func (a CareAction) PastTense() string {
	switch a {
	case CareFeed:
		return "fed"
	case CareHydrate:
		return "hydrated"
	case CarePlay:
		return "played with"
	case CareWash:
		return "washed"
	case CareCuddle:
		return "cuddled"
	default:
		return string(a)
	}
}

// Egg is a per-user virtual pet. JSON names match the bot's original snapshot files.
type Egg struct {
	Name         string    `json:"eggName"`
	Gender       Gender    `json:"gender"`
	CreatedAt    time.Time `json:"eggCreationTime"`
	LastFed      time.Time `json:"lastFed"`
	LastHydrated time.Time `json:"lastHydrated"`
	LastPlayed   time.Time `json:"lastPlayed"`
	LastWashed   time.Time `json:"lastWashed"`
	LastCuddled  time.Time `json:"lastCuddled"`
	IsDead       bool      `json:"isDead"`
	HasRevived   bool      `json:"hasRevived"`
}

// NewEgg creates an egg with every care timer started at now
func NewEgg(name string, gender Gender, now time.Time) Egg {
	return Egg{
		Name:         name,
		Gender:       gender,
		CreatedAt:    now,
		LastFed:      now,
		LastHydrated: now,
		LastPlayed:   now,
		LastWashed:   now,
		LastCuddled:  now,
	}
}

// LastCared returns the timestamp of the last time the action was performed
func (e Egg) LastCared(action CareAction) time.Time {
	switch action {
	case CareFeed:
		return e.LastFed
	case CareHydrate:
		return e.LastHydrated
	case CarePlay:
		return e.LastPlayed
	case CareWash:
		return e.LastWashed
	case CareCuddle:
		return e.LastCuddled
	default:
		return time.Time{}
	}
}

// SetLastCared records the action as performed at t
func (e *Egg) SetLastCared(action CareAction, t time.Time) {
	switch action {
	case CareFeed:
		e.LastFed = t
	case CareHydrate:
		e.LastHydrated = t
	case CarePlay:
		e.LastPlayed = t
	case CareWash:
		e.LastWashed = t
	case CareCuddle:
		e.LastCuddled = t
	}
}
