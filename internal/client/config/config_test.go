package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, c.Timeout)
	assert.Equal(t, "blindledger-dev-network", c.NetworkSecret)
	assert.NotEmpty(t, c.TokenFile)
	assert.Empty(t, c.KeyFile)
}

func TestLoadConfig_UsesDefaultsWithoutFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"ledgerctl", "market", "show", "m1"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "127.0.0.1:50051", cfg.ServerEndpointAddr)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults kept",
			args: []string{},
			want: Config{ServerEndpointAddr: "h:1", TokenFile: "tok", NetworkSecret: "net", Timeout: time.Second},
		},
		{
			name: "flags override",
			args: []string{"-a", "h:2", "--key-file", "k.hex", "--token-file", "t2", "-n", "other", "-t", "5s", "-c", "ignored.json"},
			want: Config{ServerEndpointAddr: "h:2", KeyFile: "k.hex", TokenFile: "t2", NetworkSecret: "other", Timeout: 5 * time.Second},
		},
		{
			name:    "bad duration",
			args:    []string{"-t", "soon"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{ServerEndpointAddr: "h:1", TokenFile: "tok", NetworkSecret: "net", Timeout: time.Second}
			cmd := &cobra.Command{Use: "test"}
			c.BindFlags(cmd)

			err := cmd.PersistentFlags().Parse(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}
