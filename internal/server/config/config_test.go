package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 5*time.Minute, c.ChallengeTTL)
	assert.Equal(t, 1, c.GatewayThreshold)
	assert.Equal(t, time.Hour, c.DecryptionTimeout)
	assert.Equal(t, 720*time.Hour, c.ProposalValidity)
	assert.Equal(t, 72*time.Hour, c.RevealGrace)
	assert.Equal(t, 10*time.Minute, c.MinMarketDuration)
	assert.Equal(t, 720*time.Hour, c.MaxMarketDuration)
	assert.Equal(t, uint64(100), c.MaxVoteWeight)
	assert.Equal(t, "0.01", c.VoteStake)
	assert.Equal(t, "0.001", c.CreationFee)
	assert.Empty(t, c.S3Bucket)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_grpc": "file:1",
		"secret_key":         "from-file",
	})
	os.Args = []string{"testbin", "-c", path, "-a", "flag:2"}

	c := LoadConfig()
	assert.Equal(t, "flag:2", c.EndpointAddrGRPC)
	assert.Equal(t, "from-file", c.SecretKey)
}
