package fhe

import (
	"encoding/binary"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/cryptox"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// InputEncryptor produces Inputs the engine will accept. It plays the part of
// the client-side encryption library.
type InputEncryptor struct {
	keys keys
}

func NewInputEncryptor(networkKey []byte) (*InputEncryptor, error) {
	k, err := deriveKeys(networkKey)
	if err != nil {
		return nil, err
	}
	return &InputEncryptor{keys: k}, nil
}

// Encrypt encrypts v as type t for submission by owner.
func (e *InputEncryptor) Encrypt(v uint64, t Type, owner ethcommon.Address) (Input, error) {
	if !t.Fits(v) {
		return Input{}, fmt.Errorf("%d does not fit %s: %w", v, t, common.ErrInvalidInput)
	}

	payload := make([]byte, payloadSize)
	payload[0] = byte(t)
	binary.BigEndian.PutUint64(payload[1:], v)

	ct, err := cryptox.Seal(e.keys.input, payload, owner.Bytes())
	if err != nil {
		return Input{}, err
	}
	return Input{
		Ciphertext: ct,
		Proof:      cryptox.Mac(e.keys.proof, ct, owner.Bytes()),
	}, nil
}
