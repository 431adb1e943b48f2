// Package common defines shared constants and sentinel errors used across
// client and server layers of blindledger. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Ledger error kinds. Every ledger operation fails with exactly one of
	// these (possibly wrapped with context).
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("entity not found")
	ErrInactive         = errors.New("entity inactive")
	ErrAlreadyFinalized = errors.New("already finalized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidProof     = errors.New("invalid proof")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrAlreadyRequested = errors.New("already requested")
	ErrAlreadyVoted     = errors.New("already voted")
	ErrAlreadyClaimed   = errors.New("already claimed")
	ErrNotExpired       = errors.New("not expired")
	ErrExpired          = errors.New("expired")
	ErrNotWinner        = errors.New("not a winner")
	ErrNotRevealed      = errors.New("decryption result not available")
	ErrorInternal       = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)

// Kinds lists every ledger error kind, in a stable order. Transport layers use
// it to map errors back and forth by message.
var Kinds = []error{
	ErrUnauthorized,
	ErrNotFound,
	ErrInactive,
	ErrAlreadyFinalized,
	ErrInvalidInput,
	ErrInvalidProof,
	ErrMalformedPayload,
	ErrAlreadyRequested,
	ErrAlreadyVoted,
	ErrAlreadyClaimed,
	ErrNotExpired,
	ErrExpired,
	ErrNotWinner,
	ErrNotRevealed,
}

// KindOf returns the ledger error kind err wraps, or nil if it wraps none.
func KindOf(err error) error {
	for _, k := range Kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// KindByMessage returns the error kind whose text equals msg.
func KindByMessage(msg string) (error, bool) {
	for _, k := range Kinds {
		if k.Error() == msg {
			return k, true
		}
	}
	return nil, false
}
