package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/ethereum/go-ethereum/accounts"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// nonceSize is the number of random bytes in a challenge nonce.
const nonceSize = 16

// Challenger runs the challenge-response login: the server hands out a
// one-time message, the caller signs it with its account key, and the
// recovered signer must be the address that asked.
type Challenger struct {
	pending *expirable.LRU[ethcommon.Address, string]
	ttl     time.Duration
}

func NewChallenger(size int, ttl time.Duration) *Challenger {
	return &Challenger{
		pending: expirable.NewLRU[ethcommon.Address, string](size, nil, ttl),
		ttl:     ttl,
	}
}

// Issue creates the login message for addr, replacing any earlier one.
func (c *Challenger) Issue(addr ethcommon.Address) (string, time.Time, error) {
	if addr == (ethcommon.Address{}) {
		return "", time.Time{}, fmt.Errorf("zero address: %w", common.ErrInvalidInput)
	}
	nonce, err := common.MakeRandHexString(nonceSize)
	if err != nil {
		return "", time.Time{}, err
	}
	msg := ChallengeMessage(addr, nonce)
	c.pending.Add(addr, msg)
	return msg, time.Now().Add(c.ttl), nil
}

// Verify consumes the pending challenge of addr and checks that sig is a
// personal_sign signature over it by addr.
func (c *Challenger) Verify(addr ethcommon.Address, sig []byte) error {
	msg, ok := c.pending.Peek(addr)
	if !ok {
		return fmt.Errorf("no pending challenge for %s: %w", addr.Hex(), common.ErrUnauthorized)
	}
	c.pending.Remove(addr)

	signer, err := RecoverSigner(msg, sig)
	if err != nil {
		return fmt.Errorf("%v: %w", err, common.ErrUnauthorized)
	}
	if signer != addr {
		return fmt.Errorf("challenge signed by %s: %w", signer.Hex(), common.ErrUnauthorized)
	}
	return nil
}

func ChallengeMessage(addr ethcommon.Address, nonce string) string {
	return "blindledger login\naddress: " + addr.Hex() + "\nnonce: " + nonce
}

// SignChallenge produces the signature a wallet would for msg.
func SignChallenge(msg string, key []byte) ([]byte, error) {
	priv, err := crypto.ToECDSA(key)
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(accounts.TextHash([]byte(msg)), priv)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// RecoverSigner returns the address that personal_signed msg. Both 0/1 and
// 27/28 recovery ids are accepted.
func RecoverSigner(msg string, sig []byte) (ethcommon.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return ethcommon.Address{}, fmt.Errorf("signature is %d bytes", len(sig))
	}
	s := make([]byte, len(sig))
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash([]byte(msg)), s)
	if err != nil {
		return ethcommon.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
