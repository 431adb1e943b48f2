// Package gateway models the decryption oracle: the request it receives, the
// signed proof it returns, and the ABI word layout of decrypted cleartexts.
package gateway

import (
	"context"
	"crypto/ecdsa"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// Request asks the oracle to decrypt Handles and answer with a callback
// correlated by ID.
type Request struct {
	ID      uint64
	Handles []fhe.Handle
}

// Oracle accepts decryption requests. Submit must not block on the
// decryption itself; the answer arrives later through a Fulfiller.
type Oracle interface {
	Submit(ctx context.Context, req Request) error
}

// Fulfiller is the callback entry point the oracle answers through.
type Fulfiller interface {
	HandleCallback(ctx context.Context, requestID uint64, cleartext, proof []byte) error
}

// SignatureSize is the length of one [R || S || V] secp256k1 signature.
const SignatureSize = crypto.SignatureLength

// Digest is the message every oracle signer signs:
//
//	keccak256(uint256(requestID) || handle_0 || ... || handle_n || keccak256(cleartext))
func Digest(requestID uint64, handles []fhe.Handle, cleartext []byte) []byte {
	id := uint256.NewInt(requestID).Bytes32()
	parts := make([][]byte, 0, len(handles)+2)
	parts = append(parts, id[:])
	for _, h := range handles {
		parts = append(parts, h[:])
	}
	parts = append(parts, crypto.Keccak256(cleartext))
	return crypto.Keccak256(parts...)
}

// Signer is one oracle key.
type Signer struct {
	key  *ecdsa.PrivateKey
	addr ethcommon.Address
}

// NewSigner parses a hex-encoded secp256k1 private key.
func NewSigner(hexKey string) (*Signer, error) {
	key, err := crypto.HexToECDSA(trimHex(hexKey))
	if err != nil {
		return nil, fmt.Errorf("parse gateway key: %w", err)
	}
	return &Signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

// GenerateSigner creates a signer with a fresh random key.
func GenerateSigner() (*Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Signer{key: key, addr: crypto.PubkeyToAddress(key.PublicKey)}, nil
}

func (s *Signer) Address() ethcommon.Address { return s.addr }

func (s *Signer) Sign(digest []byte) ([]byte, error) {
	return crypto.Sign(digest, s.key)
}

// Verifier authenticates callback proofs: a concatenation of signatures over
// Digest from at least Threshold distinct trusted signers.
type Verifier struct {
	signers   map[ethcommon.Address]struct{}
	threshold int
}

func NewVerifier(signers []ethcommon.Address, threshold int) (*Verifier, error) {
	set := make(map[ethcommon.Address]struct{}, len(signers))
	for _, s := range signers {
		if s == (ethcommon.Address{}) {
			return nil, fmt.Errorf("zero gateway signer: %w", common.ErrInvalidInput)
		}
		set[s] = struct{}{}
	}
	if threshold < 1 || threshold > len(set) {
		return nil, fmt.Errorf("threshold %d with %d signers: %w", threshold, len(set), common.ErrInvalidInput)
	}
	return &Verifier{signers: set, threshold: threshold}, nil
}

// Verify fails with common.ErrInvalidProof unless proof carries enough valid
// signatures for (requestID, handles, cleartext).
func (v *Verifier) Verify(requestID uint64, handles []fhe.Handle, cleartext, proof []byte) error {
	if len(proof) == 0 || len(proof)%SignatureSize != 0 {
		return fmt.Errorf("proof length %d: %w", len(proof), common.ErrInvalidProof)
	}

	digest := Digest(requestID, handles, cleartext)
	seen := make(map[ethcommon.Address]struct{})
	for off := 0; off < len(proof); off += SignatureSize {
		pub, err := crypto.SigToPub(digest, proof[off:off+SignatureSize])
		if err != nil {
			continue
		}
		addr := crypto.PubkeyToAddress(*pub)
		if _, ok := v.signers[addr]; ok {
			seen[addr] = struct{}{}
		}
	}
	if len(seen) < v.threshold {
		return fmt.Errorf("%d of %d required signers: %w", len(seen), v.threshold, common.ErrInvalidProof)
	}
	return nil
}

func trimHex(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
