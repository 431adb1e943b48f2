// Package config handles configuration for the ledger server: defaults,
// a JSON or TOML file overlay, and command-line flags.
package config

import (
	"time"
)

// Config holds runtime settings for the ledger server.
//
// Amounts (VoteStake, CreationFee) are decimal ether strings. An empty
// DatabaseDSN selects the in-memory store, an empty EngineDir an in-memory
// ciphertext store, an empty S3Bucket disables the event archive, and empty
// GatewayKeys disable the in-process gateway.
type Config struct {
	EndpointAddrGRPC            string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ChallengeTTL                time.Duration

	Owner         string
	NetworkSecret string
	EngineDir     string

	GatewaySigners   []string
	GatewayThreshold int
	GatewayKeys      []string
	GatewayDelay     time.Duration
	GatewayQueueSize int

	DecryptionTimeout time.Duration
	ProposalValidity  time.Duration
	RevealGrace       time.Duration
	MinMarketDuration time.Duration
	MaxMarketDuration time.Duration
	MaxVoteWeight     uint64
	VoteStake         string
	CreationFee       string

	LogLevel        string
	LogFile         string
	MetricsInterval time.Duration

	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3Prefix       string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secrets are insecure and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.ChallengeTTL = 5 * time.Minute

	c.NetworkSecret = "blindledger-dev-network"

	c.GatewayThreshold = 1
	c.GatewayQueueSize = 256

	c.DecryptionTimeout = time.Hour
	c.ProposalValidity = 720 * time.Hour
	c.RevealGrace = 72 * time.Hour
	c.MinMarketDuration = 10 * time.Minute
	c.MaxMarketDuration = 720 * time.Hour
	c.MaxVoteWeight = 100
	c.VoteStake = "0.01"
	c.CreationFee = "0.001"

	c.LogLevel = "info"
	c.MetricsInterval = time.Minute

	c.S3Region = "us-east-1"
	c.S3Prefix = "events"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseFlags(cfg)
	return cfg
}
