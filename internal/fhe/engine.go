package fhe

import (
	"context"
	"errors"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrUnknownHandle  = errors.New("fhe: unknown handle")
	ErrTypeMismatch   = errors.New("fhe: operand type mismatch")
	ErrNotDecryptable = errors.New("fhe: handle not marked for decryption")
)

// Engine is the homomorphic capability used by the ledger. Handles are
// opaque; the engine never returns plaintext.
type Engine interface {
	// VerifyInput checks the proof of a client ciphertext submitted by owner
	// and registers it, returning its handle. The owner is granted access.
	VerifyInput(ctx context.Context, in Input, owner ethcommon.Address, want Type) (Handle, error)
	// TrivialEncrypt wraps a public constant.
	TrivialEncrypt(ctx context.Context, v uint64, t Type) (Handle, error)
	// Add returns a+b in the wider operand type, wrapping on overflow.
	Add(ctx context.Context, a, b Handle) (Handle, error)
	// Le returns the encrypted boolean a <= b.
	Le(ctx context.Context, a, b Handle) (Handle, error)
	// Select returns cond ? a : b.
	Select(ctx context.Context, cond, a, b Handle) (Handle, error)

	// Allow grants addr permanent read access to h. Grants are never revoked.
	Allow(ctx context.Context, h Handle, addr ethcommon.Address) error
	IsAllowed(ctx context.Context, h Handle, addr ethcommon.Address) (bool, error)
	// AllowForDecryption lets the gateway decrypt the given handles.
	AllowForDecryption(ctx context.Context, hs ...Handle) error
}

// Decryptor is the privileged side of the engine used by the gateway and by
// user re-encryption.
type Decryptor interface {
	// Decrypt returns the plaintext of a handle marked for decryption.
	Decrypt(ctx context.Context, h Handle) (uint64, error)
	// UserDecrypt returns the plaintext of h if addr has been granted access.
	UserDecrypt(ctx context.Context, h Handle, addr ethcommon.Address) (uint64, error)
}
