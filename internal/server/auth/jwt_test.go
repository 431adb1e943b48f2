package auth

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = ethcommon.HexToAddress("0x00000000000000000000000000000000000a11ce")

func TestToken_RoundTrip(t *testing.T) {
	secret := []byte("secret")
	token, exp, err := GenerateToken(alice, secret, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	got, err := AddressFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
}

func TestToken_Rejections(t *testing.T) {
	secret := []byte("secret")

	expired, _, err := GenerateToken(alice, secret, -time.Minute)
	require.NoError(t, err)
	_, err = AddressFromToken(expired, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)

	token, _, err := GenerateToken(alice, secret, time.Hour)
	require.NoError(t, err)
	_, err = AddressFromToken(token, []byte("other"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = AddressFromToken("not-a-jwt", secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	noAddr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)
	_, err = AddressFromToken(noAddr, secret)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestChallenger_Login(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)
	c := NewChallenger(16, time.Minute)

	msg, exp, err := c.Issue(addr)
	require.NoError(t, err)
	assert.Contains(t, msg, addr.Hex())
	assert.True(t, exp.After(time.Now()))

	sig, err := SignChallenge(msg, crypto.FromECDSA(key))
	require.NoError(t, err)
	require.NoError(t, c.Verify(addr, sig))

	assert.ErrorIs(t, c.Verify(addr, sig), common.ErrUnauthorized, "challenge is single use")
}

func TestChallenger_IssueFreshNonce(t *testing.T) {
	c := NewChallenger(16, time.Minute)

	nonceOf := func(msg string) string {
		i := strings.LastIndex(msg, "nonce: ")
		require.GreaterOrEqual(t, i, 0)
		return msg[i+len("nonce: "):]
	}

	first, _, err := c.Issue(alice)
	require.NoError(t, err)
	second, _, err := c.Issue(alice)
	require.NoError(t, err)

	n := nonceOf(first)
	assert.Len(t, n, 2*nonceSize)
	_, err = hex.DecodeString(n)
	assert.NoError(t, err)
	assert.NotEqual(t, n, nonceOf(second), "reissue replaces the nonce")

	_, _, err = c.Issue(ethcommon.Address{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestChallenger_WrongSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)
	c := NewChallenger(16, time.Minute)

	msg, _, err := c.Issue(addr)
	require.NoError(t, err)
	sig, err := SignChallenge(msg, crypto.FromECDSA(other))
	require.NoError(t, err)
	assert.ErrorIs(t, c.Verify(addr, sig), common.ErrUnauthorized)

	_, _, err = c.Issue(ethcommon.Address{})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestChallenger_Expired(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)
	c := NewChallenger(16, 20*time.Millisecond)

	msg, _, err := c.Issue(addr)
	require.NoError(t, err)
	sig, err := SignChallenge(msg, crypto.FromECDSA(key))
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
	assert.ErrorIs(t, c.Verify(addr, sig), common.ErrUnauthorized)
}

func TestRecoverSigner_RecoveryIDs(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := SignChallenge("hello", crypto.FromECDSA(key))
	require.NoError(t, err)
	got, err := RecoverSigner("hello", sig)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	sig[crypto.RecoveryIDOffset] -= 27
	got, err = RecoverSigner("hello", sig)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = RecoverSigner("hello", sig[:10])
	assert.Error(t, err)
}
