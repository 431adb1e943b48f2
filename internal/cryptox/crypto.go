// Package cryptox holds the symmetric primitives used to keep simulated
// ciphertexts sealed: AES-GCM sealing, HKDF key derivation and HMAC tags.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"golang.org/x/crypto/hkdf"
)

// ErrDecrypt is returned when a sealed blob cannot be opened with the given
// key and associated data.
var ErrDecrypt = errors.New("cryptox: message authentication failed")

// DeriveKey expands secret into a size-byte key bound to info using
// HKDF-SHA256. The same inputs always produce the same key.
func DeriveKey(secret, salt []byte, info string, size int) ([]byte, error) {
	key := make([]byte, size)
	r := hkdf.New(sha256.New, secret, salt, []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Seal encrypts plaintext with AES-GCM under key, authenticating aad as well.
// The random nonce is prepended to the returned ciphertext.
//
// The key must be 16, 24 or 32 bytes long.
func Seal(key, plaintext, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, aad), nil
}

// Open reverses Seal. Any tampering with the ciphertext or aad yields ErrDecrypt.
func Open(key, sealed, aad []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	n := aead.NonceSize()
	if len(sealed) < n+aead.Overhead() {
		return nil, ErrDecrypt
	}

	plaintext, err := aead.Open(nil, sealed[:n], sealed[n:], aad)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plaintext, nil
}

// Mac returns HMAC-SHA256 over the concatenation of parts.
func Mac(key []byte, parts ...[]byte) []byte {
	m := hmac.New(sha256.New, key)
	for _, p := range parts {
		m.Write(p)
	}
	return m.Sum(nil)
}

// VerifyMac reports whether tag is the HMAC of parts, in constant time.
func VerifyMac(key, tag []byte, parts ...[]byte) bool {
	return hmac.Equal(tag, Mac(key, parts...))
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
