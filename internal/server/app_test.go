package server

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/server/config"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwner = "0x00000000000000000000000000000000000000a1"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.LoadDefaults()
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.Owner = testOwner
	c.LogLevel = "error"
	c.MetricsInterval = 0
	return c
}

func gatewayKey(t *testing.T) string {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return hex.EncodeToString(crypto.FromECDSA(key))
}

func TestLedgerConfig(t *testing.T) {
	c := testConfig(t)
	c.VoteStake = "0.5"
	c.CreationFee = "0"
	c.MaxVoteWeight = 7

	cfg, err := ledgerConfig(c)
	require.NoError(t, err)
	assert.Equal(t, ethcommon.HexToAddress(testOwner), cfg.Owner)
	assert.Equal(t, "500000000000000000", cfg.VoteStake.Dec())
	assert.True(t, cfg.CreationFee.IsZero())
	assert.Equal(t, uint64(7), cfg.MaxVoteWeight)
	assert.Equal(t, c.RevealGrace, cfg.RevealGrace)
}

func TestLedgerConfig_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"missing owner", func(c *config.Config) { c.Owner = "" }},
		{"bad owner", func(c *config.Config) { c.Owner = "alice" }},
		{"bad stake", func(c *config.Config) { c.VoteStake = "a lot" }},
		{"zero stake", func(c *config.Config) { c.VoteStake = "0" }},
		{"negative fee", func(c *config.Config) { c.CreationFee = "-1" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig(t)
			tt.mutate(c)
			_, err := ledgerConfig(c)
			assert.Error(t, err)
		})
	}
}

func TestNewApp_InMemoryWithRelayer(t *testing.T) {
	c := testConfig(t)
	c.GatewayKeys = []string{gatewayKey(t)}

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	require.NotNil(t, app.relayer)

	s, err := app.ledger.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10000000000000000", s.VoteStake.Dec())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop after cancel")
	}
}

func TestNewApp_ExternalGateway(t *testing.T) {
	c := testConfig(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	c.GatewaySigners = []string{crypto.PubkeyToAddress(key.PublicKey).Hex()}

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	assert.Nil(t, app.relayer)
	app.close()
}

func TestNewApp_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"no gateway signers", func(c *config.Config) {}},
		{"bad gateway key", func(c *config.Config) { c.GatewayKeys = []string{"zz"} }},
		{"bad signer address", func(c *config.Config) { c.GatewaySigners = []string{"nobody"} }},
		{"threshold above signers", func(c *config.Config) {
			c.GatewayKeys = []string{gatewayKey(t)}
			c.GatewayThreshold = 2
		}},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testConfig(t)
			tt.mutate(c)
			_, err := NewApp(context.Background(), c)
			assert.Error(t, err)
		})
	}
}

func TestNewApp_CreatesEngineDir(t *testing.T) {
	c := testConfig(t)
	c.GatewayKeys = []string{gatewayKey(t)}
	c.EngineDir = filepath.Join(t.TempDir(), "engine", "store")

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)
	app.close()

	fi, err := os.Stat(c.EngineDir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}
