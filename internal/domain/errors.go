package domain

import (
	"errors"
	"fmt"
)

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency. All of them are
// recoverable-by-caller conditions; the API layer maps them to 4xx responses.

var (
	// Ledger errors
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient point balance")

	// Reward errors
	ErrRewardExhausted = errors.New("reward has no redemptions left")
	ErrUnknownReward   = errors.New("reward not found")

	// Interaction errors
	ErrUnknownDestination = errors.New("destination not found")
	ErrUnknownUser        = errors.New("user not found")
	ErrInvalidAction      = errors.New("unrecognized interaction action")

	// Submission errors
	ErrValidation       = errors.New("validation failed")
	ErrDuplicateRNT     = errors.New("destination with this RNT already exists")
	ErrAlreadyModerated = errors.New("submission already moderated")
)

// fieldError wraps ErrValidation with the name of the failing field.
func fieldError(field string) error {
	return fmt.Errorf("%w: invalid %s", ErrValidation, field)
}
