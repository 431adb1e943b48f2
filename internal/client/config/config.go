package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// Config holds runtime settings for ledgerctl.
//
// Fields:
//   - ServerEndpointAddr: host:port of the ledger gRPC endpoint.
//   - KeyFile: file holding the hex secp256k1 key; empty prompts for it.
//   - TokenFile: where login stores the access token for later commands.
//   - NetworkSecret: secret the input encryption key is derived from; must
//     match the server's.
//   - Timeout: deadline applied to each command.
type Config struct {
	ServerEndpointAddr string
	KeyFile            string
	TokenFile          string
	NetworkSecret      string
	Timeout            time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.KeyFile = ""
	c.TokenFile = defaultTokenFile()
	c.NetworkSecret = "blindledger-dev-network"
	c.Timeout = 30 * time.Second
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ledgerctl-token"
	}
	return filepath.Join(dir, "blindledger", "token")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the JSON file named by -c/--config, if any. Command-line flags are applied
// later by cobra (see BindFlags).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	return cfg
}

// BindFlags registers the persistent flags of cmd on c, using the current
// values of c as defaults.
func (c *Config) BindFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringP("config", "c", "", "path to JSON config file")
	fs.StringVarP(&c.ServerEndpointAddr, "addr", "a", c.ServerEndpointAddr, "ledger server address")
	fs.StringVarP(&c.KeyFile, "key-file", "k", c.KeyFile, "file holding the hex private key")
	fs.StringVar(&c.TokenFile, "token-file", c.TokenFile, "where the access token is kept")
	fs.StringVarP(&c.NetworkSecret, "network-secret", "n", c.NetworkSecret, "network secret for input encryption")
	fs.DurationVarP(&c.Timeout, "timeout", "t", c.Timeout, "per-command timeout")
}
