// Package fhe is the encrypted-compute capability the ledger builds on:
// opaque ciphertext handles, homomorphic add/compare/select, and an
// append-only access-control list deciding who may decrypt what.
//
// Simulator is a deterministic stand-in for a real FHE co-processor. It keeps
// plaintexts sealed at rest and derives every result handle from the
// operation and its operands, so recomputing the same expression yields the
// same handle.
package fhe

import (
	"database/sql/driver"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Type is the plaintext type behind a handle.
type Type uint8

const (
	TypeBool Type = iota + 1
	TypeUint32
	TypeUint64
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "ebool"
	case TypeUint32:
		return "euint32"
	case TypeUint64:
		return "euint64"
	default:
		return fmt.Sprintf("etype(%d)", uint8(t))
	}
}

// Bits is the plaintext width.
func (t Type) Bits() int {
	switch t {
	case TypeBool:
		return 1
	case TypeUint32:
		return 32
	case TypeUint64:
		return 64
	default:
		return 0
	}
}

func (t Type) Valid() bool { return t.Bits() > 0 }

// Fits reports whether v is representable in t.
func (t Type) Fits(v uint64) bool {
	bits := t.Bits()
	if bits == 0 {
		return false
	}
	return bits == 64 || v>>bits == 0
}

func (t Type) mask(v uint64) uint64 {
	if t.Bits() == 64 {
		return v
	}
	return v & (1<<t.Bits() - 1)
}

func wider(a, b Type) Type {
	if a.Bits() >= b.Bits() {
		return a
	}
	return b
}

// Handle references a ciphertext. The last byte carries its Type.
type Handle [32]byte

func (h Handle) Type() Type    { return Type(h[31]) }
func (h Handle) IsZero() bool  { return h == Handle{} }
func (h Handle) Hex() string   { return hexutil.Encode(h[:]) }
func (h Handle) Bytes() []byte { return h[:] }
func (h Handle) String() string {
	return h.Hex()
}

func (h Handle) MarshalText() ([]byte, error) {
	return hexutil.Bytes(h[:]).MarshalText()
}

func (h *Handle) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Handle", input, h[:])
}

// Scan reads a handle stored as bytea. NULL scans to the zero handle.
func (h *Handle) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*h = Handle{}
		return nil
	case []byte:
		if len(v) != len(h) {
			return fmt.Errorf("fhe: handle must be %d bytes, got %d", len(h), len(v))
		}
		copy(h[:], v)
		return nil
	default:
		return fmt.Errorf("fhe: cannot scan %T into Handle", src)
	}
}

func (h Handle) Value() (driver.Value, error) {
	return h[:], nil
}

// HexToHandle parses a 0x-prefixed 32-byte hex string.
func HexToHandle(s string) (Handle, error) {
	var h Handle
	err := h.UnmarshalText([]byte(s))
	return h, err
}

// Input is a client-encrypted value together with the proof that binds it to
// the submitting account.
type Input struct {
	Ciphertext hexutil.Bytes `json:"ciphertext"`
	Proof      hexutil.Bytes `json:"proof"`
}

func (in Input) IsEmpty() bool {
	return len(in.Ciphertext) == 0 && len(in.Proof) == 0
}
