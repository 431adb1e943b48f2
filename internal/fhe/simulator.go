package fhe

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/cryptox"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

const (
	networkKeyInfo = "blindledger/fhe/network"
	inputKeyInfo   = "blindledger/fhe/input"
	proofKeyInfo   = "blindledger/fhe/proof"
	storageKeyInfo = "blindledger/fhe/storage"

	// type byte followed by a big-endian uint64
	payloadSize = 9
)

var (
	prefixValue   = []byte("v/")
	prefixACL     = []byte("a/")
	prefixDecrypt = []byte("d/")
	granted       = []byte{1}

	opTrivial = []byte("trivial")
	opInput   = []byte("input")
	opAdd     = []byte("add")
	opLe      = []byte("le")
	opSelect  = []byte("select")

	errClosedEngine = errors.New("fhe: engine closed")
)

// DeriveNetworkKey turns the configured network secret into the key shared by
// the engine and input encryptors.
func DeriveNetworkKey(secret string) ([]byte, error) {
	if secret == "" {
		return nil, errors.New("fhe: empty network secret")
	}
	return cryptox.DeriveKey([]byte(secret), nil, networkKeyInfo, 32)
}

type keys struct {
	input   []byte
	proof   []byte
	storage []byte
}

func deriveKeys(networkKey []byte) (keys, error) {
	var k keys
	var err error
	if k.input, err = cryptox.DeriveKey(networkKey, nil, inputKeyInfo, 32); err != nil {
		return k, err
	}
	if k.proof, err = cryptox.DeriveKey(networkKey, nil, proofKeyInfo, 32); err != nil {
		return k, err
	}
	if k.storage, err = cryptox.DeriveKey(networkKey, nil, storageKeyInfo, 32); err != nil {
		return k, err
	}
	return k, nil
}

// Simulator implements Engine and Decryptor on top of LevelDB. Plaintexts are
// sealed with AES-GCM before they touch the store.
type Simulator struct {
	db   *leveldb.DB
	keys keys
}

// OpenSimulator opens (or creates) the store in dir. An empty dir keeps the
// store in memory.
func OpenSimulator(dir string, networkKey []byte) (*Simulator, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if dir == "" {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(dir, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("open engine store: %w", err)
	}
	return NewSimulator(db, networkKey)
}

func NewSimulator(db *leveldb.DB, networkKey []byte) (*Simulator, error) {
	k, err := deriveKeys(networkKey)
	if err != nil {
		return nil, err
	}
	return &Simulator{db: db, keys: k}, nil
}

func (s *Simulator) Close() error {
	return s.db.Close()
}

func (s *Simulator) VerifyInput(ctx context.Context, in Input, owner ethcommon.Address, want Type) (Handle, error) {
	if !cryptox.VerifyMac(s.keys.proof, in.Proof, in.Ciphertext, owner.Bytes()) {
		return Handle{}, fmt.Errorf("input proof rejected: %w", common.ErrInvalidProof)
	}
	payload, err := cryptox.Open(s.keys.input, in.Ciphertext, owner.Bytes())
	if err != nil || len(payload) != payloadSize {
		return Handle{}, fmt.Errorf("input ciphertext rejected: %w", common.ErrInvalidProof)
	}

	t, v := Type(payload[0]), binary.BigEndian.Uint64(payload[1:])
	if t != want {
		return Handle{}, fmt.Errorf("input is %s, want %s: %w", t, want, common.ErrInvalidInput)
	}
	if !t.Fits(v) {
		return Handle{}, fmt.Errorf("input overflows %s: %w", t, common.ErrInvalidInput)
	}

	h := deriveHandle(t, opInput, in.Ciphertext)
	if err := s.store(h, v); err != nil {
		return Handle{}, err
	}
	if err := s.Allow(ctx, h, owner); err != nil {
		return Handle{}, err
	}
	return h, nil
}

func (s *Simulator) TrivialEncrypt(ctx context.Context, v uint64, t Type) (Handle, error) {
	if !t.Fits(v) {
		return Handle{}, fmt.Errorf("constant %d overflows %s: %w", v, t, common.ErrInvalidInput)
	}
	h := deriveHandle(t, opTrivial, []byte{byte(t)}, u64(v))
	return h, s.store(h, v)
}

func (s *Simulator) Add(ctx context.Context, a, b Handle) (Handle, error) {
	va, vb, err := s.loadPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	if a.Type() == TypeBool || b.Type() == TypeBool {
		return Handle{}, fmt.Errorf("add on %s and %s: %w", a.Type(), b.Type(), ErrTypeMismatch)
	}
	t := wider(a.Type(), b.Type())
	h := deriveHandle(t, opAdd, a[:], b[:])
	return h, s.store(h, t.mask(va+vb))
}

func (s *Simulator) Le(ctx context.Context, a, b Handle) (Handle, error) {
	va, vb, err := s.loadPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	var out uint64
	if va <= vb {
		out = 1
	}
	h := deriveHandle(TypeBool, opLe, a[:], b[:])
	return h, s.store(h, out)
}

func (s *Simulator) Select(ctx context.Context, cond, a, b Handle) (Handle, error) {
	if cond.Type() != TypeBool {
		return Handle{}, fmt.Errorf("select condition is %s: %w", cond.Type(), ErrTypeMismatch)
	}
	c, err := s.load(cond)
	if err != nil {
		return Handle{}, err
	}
	va, vb, err := s.loadPair(a, b)
	if err != nil {
		return Handle{}, err
	}
	t := wider(a.Type(), b.Type())
	out := vb
	if c == 1 {
		out = va
	}
	h := deriveHandle(t, opSelect, cond[:], a[:], b[:])
	return h, s.store(h, out)
}

func (s *Simulator) Allow(ctx context.Context, h Handle, addr ethcommon.Address) error {
	if _, err := s.load(h); err != nil {
		return err
	}
	return s.db.Put(aclKey(h, addr), granted, nil)
}

func (s *Simulator) IsAllowed(ctx context.Context, h Handle, addr ethcommon.Address) (bool, error) {
	return s.db.Has(aclKey(h, addr), nil)
}

func (s *Simulator) AllowForDecryption(ctx context.Context, hs ...Handle) error {
	batch := new(leveldb.Batch)
	for _, h := range hs {
		if _, err := s.load(h); err != nil {
			return err
		}
		batch.Put(append(append([]byte{}, prefixDecrypt...), h[:]...), granted)
	}
	return s.db.Write(batch, nil)
}

func (s *Simulator) Decrypt(ctx context.Context, h Handle) (uint64, error) {
	ok, err := s.db.Has(append(append([]byte{}, prefixDecrypt...), h[:]...), nil)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotDecryptable
	}
	return s.load(h)
}

func (s *Simulator) UserDecrypt(ctx context.Context, h Handle, addr ethcommon.Address) (uint64, error) {
	ok, err := s.IsAllowed(ctx, h, addr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%s may not read %s: %w", addr.Hex(), h.Hex(), common.ErrUnauthorized)
	}
	return s.load(h)
}

func (s *Simulator) store(h Handle, v uint64) error {
	sealed, err := cryptox.Seal(s.keys.storage, u64(v), h[:])
	if err != nil {
		return err
	}
	return s.db.Put(valueKey(h), sealed, nil)
}

func (s *Simulator) load(h Handle) (uint64, error) {
	if !h.Type().Valid() {
		return 0, fmt.Errorf("%s: %w", h.Hex(), ErrUnknownHandle)
	}
	sealed, err := s.db.Get(valueKey(h), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return 0, fmt.Errorf("%s: %w", h.Hex(), ErrUnknownHandle)
	}
	if errors.Is(err, leveldb.ErrClosed) {
		return 0, errClosedEngine
	}
	if err != nil {
		return 0, err
	}
	plain, err := cryptox.Open(s.keys.storage, sealed, h[:])
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", h.Hex(), err)
	}
	return binary.BigEndian.Uint64(plain), nil
}

func (s *Simulator) loadPair(a, b Handle) (uint64, uint64, error) {
	va, err := s.load(a)
	if err != nil {
		return 0, 0, err
	}
	vb, err := s.load(b)
	if err != nil {
		return 0, 0, err
	}
	return va, vb, nil
}

func deriveHandle(t Type, parts ...[]byte) Handle {
	var h Handle
	copy(h[:], crypto.Keccak256(parts...))
	h[31] = byte(t)
	return h
}

func valueKey(h Handle) []byte {
	return append(append([]byte{}, prefixValue...), h[:]...)
}

func aclKey(h Handle, addr ethcommon.Address) []byte {
	k := append(append([]byte{}, prefixACL...), h[:]...)
	return append(k, addr.Bytes()...)
}

func u64(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}
