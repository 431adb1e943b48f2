package gateway

import (
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/holiman/uint256"
)

// WordSize is the width of one ABI-encoded value.
const WordSize = 32

// EncodeWords lays values out as consecutive 32-byte big-endian words.
func EncodeWords(values ...uint64) []byte {
	out := make([]byte, 0, len(values)*WordSize)
	for _, v := range values {
		w := uint256.NewInt(v).Bytes32()
		out = append(out, w[:]...)
	}
	return out
}

// DecodeWords reads exactly n words, each of which must fit in bits. Any
// other layout is common.ErrMalformedPayload.
func DecodeWords(data []byte, n, bits int) ([]uint64, error) {
	if len(data) != n*WordSize {
		return nil, fmt.Errorf("payload is %d bytes, want %d: %w", len(data), n*WordSize, common.ErrMalformedPayload)
	}
	out := make([]uint64, n)
	var w uint256.Int
	for i := range out {
		w.SetBytes32(data[i*WordSize : (i+1)*WordSize])
		if w.BitLen() > bits {
			return nil, fmt.Errorf("word %d exceeds %d bits: %w", i, bits, common.ErrMalformedPayload)
		}
		out[i] = w.Uint64()
	}
	return out, nil
}
