package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Egg errors
	ErrMsgEggAlreadyExists = "egg already exists"
	ErrMsgEggNotFound      = "egg not found"
	ErrMsgEggNotDead       = "egg is not dead"
	ErrMsgAlreadyRevived   = "egg was already revived once"
	ErrMsgInvalidGender    = "invalid gender"

	// Marriage errors
	ErrMsgSelfMarriage          = "cannot marry yourself"
	ErrMsgAlreadyMarried        = "already married"
	ErrMsgPartnerAlreadyMarried = "partner is already married"
	ErrMsgNotMarried            = "not married to this user"
	ErrMsgProposalDeclined      = "proposal declined"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgUnknownItem       = "unknown item"
	ErrMsgUnauthorized      = "unauthorized"
	ErrMsgTargetHasNothing  = "target has no coins"
	ErrMsgRobberHasNothing  = "robber has no coins"

	// Prompt errors
	ErrMsgPromptTimeout    = "prompt timed out"
	ErrMsgPromptSuperseded = "prompt superseded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Egg errors
	ErrEggAlreadyExists = errors.New(ErrMsgEggAlreadyExists)
	ErrEggNotFound      = errors.New(ErrMsgEggNotFound)
	ErrEggNotDead       = errors.New(ErrMsgEggNotDead)
	ErrAlreadyRevived   = errors.New(ErrMsgAlreadyRevived)
	ErrInvalidGender    = errors.New(ErrMsgInvalidGender)

	// Marriage errors
	ErrSelfMarriage          = errors.New(ErrMsgSelfMarriage)
	ErrAlreadyMarried        = errors.New(ErrMsgAlreadyMarried)
	ErrPartnerAlreadyMarried = errors.New(ErrMsgPartnerAlreadyMarried)
	ErrNotMarried            = errors.New(ErrMsgNotMarried)
	ErrProposalDeclined      = errors.New(ErrMsgProposalDeclined)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrUnknownItem       = errors.New(ErrMsgUnknownItem)
	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)
	ErrTargetHasNothing  = errors.New(ErrMsgTargetHasNothing)
	ErrRobberHasNothing  = errors.New(ErrMsgRobberHasNothing)

	// Prompt errors
	ErrPromptTimeout    = errors.New(ErrMsgPromptTimeout)
	ErrPromptSuperseded = errors.New(ErrMsgPromptSuperseded)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
