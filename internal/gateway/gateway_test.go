package gateway

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := GenerateSigner()
	require.NoError(t, err)
	return s
}

func handles(n int) []fhe.Handle {
	out := make([]fhe.Handle, n)
	for i := range out {
		out[i][0] = byte(i + 1)
		out[i][31] = byte(fhe.TypeUint64)
	}
	return out
}

func sign(t *testing.T, id uint64, hs []fhe.Handle, clear []byte, signers ...*Signer) []byte {
	t.Helper()
	var proof []byte
	for _, s := range signers {
		sig, err := s.Sign(Digest(id, hs, clear))
		require.NoError(t, err)
		proof = append(proof, sig...)
	}
	return proof
}

func TestNewSigner_FromHex(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := "0x" + ethcommon.Bytes2Hex(crypto.FromECDSA(key))

	s, err := NewSigner(hexKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), s.Address())

	_, err = NewSigner("not-a-key")
	assert.Error(t, err)
}

func TestVerifier(t *testing.T) {
	s1, s2, outsider := mustSigner(t), mustSigner(t), mustSigner(t)
	v, err := NewVerifier([]ethcommon.Address{s1.Address(), s2.Address()}, 2)
	require.NoError(t, err)

	hs := handles(2)
	clear := EncodeWords(4, 7)

	t.Run("threshold met", func(t *testing.T) {
		assert.NoError(t, v.Verify(9, hs, clear, sign(t, 9, hs, clear, s1, s2)))
	})

	t.Run("below threshold", func(t *testing.T) {
		err := v.Verify(9, hs, clear, sign(t, 9, hs, clear, s1))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("duplicate signer counted once", func(t *testing.T) {
		err := v.Verify(9, hs, clear, sign(t, 9, hs, clear, s1, s1))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("untrusted signer ignored", func(t *testing.T) {
		err := v.Verify(9, hs, clear, sign(t, 9, hs, clear, s1, outsider))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("other request id", func(t *testing.T) {
		err := v.Verify(10, hs, clear, sign(t, 9, hs, clear, s1, s2))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("altered cleartext", func(t *testing.T) {
		err := v.Verify(9, hs, EncodeWords(7, 4), sign(t, 9, hs, clear, s1, s2))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("other handles", func(t *testing.T) {
		err := v.Verify(9, handles(1), clear, sign(t, 9, hs, clear, s1, s2))
		assert.ErrorIs(t, err, common.ErrInvalidProof)
	})

	t.Run("bad length", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(9, hs, clear, nil), common.ErrInvalidProof)
		assert.ErrorIs(t, v.Verify(9, hs, clear, make([]byte, 64)), common.ErrInvalidProof)
	})

	t.Run("garbage signature", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify(9, hs, clear, make([]byte, SignatureSize)), common.ErrInvalidProof)
	})
}

func TestNewVerifier_Validation(t *testing.T) {
	s := mustSigner(t)
	_, err := NewVerifier([]ethcommon.Address{s.Address()}, 0)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = NewVerifier([]ethcommon.Address{s.Address(), s.Address()}, 2)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = NewVerifier([]ethcommon.Address{{}}, 1)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestWords(t *testing.T) {
	data := EncodeWords(4, 7)
	require.Len(t, data, 64)
	assert.Equal(t, byte(4), data[31])
	assert.Equal(t, byte(7), data[63])

	got, err := DecodeWords(data, 2, 32)
	require.NoError(t, err)
	assert.Equal(t, []uint64{4, 7}, got)

	big := EncodeWords(1<<32, 1)
	_, err = DecodeWords(big, 2, 32)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)

	got, err = DecodeWords(big, 2, 64)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1 << 32, 1}, got)

	overflow := EncodeWords(0, 0)
	overflow[0] = 1
	_, err = DecodeWords(overflow, 2, 64)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)

	_, err = DecodeWords(data[:40], 2, 32)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
	_, err = DecodeWords(data, 1, 32)
	assert.ErrorIs(t, err, common.ErrMalformedPayload)
}

type fulfillerFunc func(ctx context.Context, id uint64, clear, proof []byte) error

func (f fulfillerFunc) HandleCallback(ctx context.Context, id uint64, clear, proof []byte) error {
	return f(ctx, id, clear, proof)
}

func TestRelayer_EndToEnd(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	key, err := fhe.DeriveNetworkKey("relayer-test")
	require.NoError(t, err)
	sim, err := fhe.OpenSimulator("", key)
	require.NoError(t, err)
	defer sim.Close()

	yes, err := sim.TrivialEncrypt(ctx, 4, fhe.TypeUint64)
	require.NoError(t, err)
	no, err := sim.TrivialEncrypt(ctx, 7, fhe.TypeUint64)
	require.NoError(t, err)
	require.NoError(t, sim.AllowForDecryption(ctx, yes, no))

	signer := mustSigner(t)
	verifier, err := NewVerifier([]ethcommon.Address{signer.Address()}, 1)
	require.NoError(t, err)

	r, err := NewRelayer(sim, []*Signer{signer}, 4, 0, logging.Nop())
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		got []uint64
	)
	done := make(chan struct{})
	go r.Run(ctx, fulfillerFunc(func(ctx context.Context, id uint64, clear, proof []byte) error {
		defer close(done)
		if err := verifier.Verify(id, []fhe.Handle{yes, no}, clear, proof); err != nil {
			return err
		}
		vals, err := DecodeWords(clear, 2, 64)
		if err != nil {
			return err
		}
		mu.Lock()
		got = vals
		mu.Unlock()
		return nil
	}))

	require.NoError(t, r.Submit(ctx, Request{ID: 3, Handles: []fhe.Handle{yes, no}}))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("callback not delivered")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uint64{4, 7}, got)
}

func TestRelayer_RespondFailsForUnmarkedHandle(t *testing.T) {
	ctx := context.Background()
	key, err := fhe.DeriveNetworkKey("relayer-test")
	require.NoError(t, err)
	sim, err := fhe.OpenSimulator("", key)
	require.NoError(t, err)
	defer sim.Close()

	h, err := sim.TrivialEncrypt(ctx, 1, fhe.TypeUint64)
	require.NoError(t, err)

	r, err := NewRelayer(sim, []*Signer{mustSigner(t)}, 1, 0, logging.Nop())
	require.NoError(t, err)

	_, _, err = r.Respond(ctx, Request{ID: 1, Handles: []fhe.Handle{h}})
	assert.ErrorIs(t, err, fhe.ErrNotDecryptable)
}

func TestRelayer_QueueFull(t *testing.T) {
	r, err := NewRelayer(nil, []*Signer{mustSigner(t)}, 1, 0, logging.Nop())
	require.NoError(t, err)

	require.NoError(t, r.Submit(context.Background(), Request{ID: 1}))
	assert.ErrorIs(t, r.Submit(context.Background(), Request{ID: 2}), ErrQueueFull)
}

func TestNewRelayer_NeedsSigner(t *testing.T) {
	_, err := NewRelayer(nil, nil, 1, 0, logging.Nop())
	assert.Error(t, err)
}

func TestMailbox_AcceptsEverything(t *testing.T) {
	m := NewMailbox(logging.Nop())
	for id := uint64(1); id <= 3; id++ {
		require.NoError(t, m.Submit(context.Background(), Request{ID: id}))
	}
}
