package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dmitrijs2005/blindledger/internal/flagx"
	"github.com/dmitrijs2005/blindledger/internal/timex"
)

// FileConfig is the on-disk shape of the server configuration, readable as
// JSON or TOML. Durations accept "1h" strings or integer nanoseconds. Only
// keys present in the file override the defaults.
type FileConfig struct {
	EndpointAddrGRPC            string         `json:"endpoint_addr_grpc" toml:"endpoint_addr_grpc"`
	DatabaseDSN                 string         `json:"database_dsn" toml:"database_dsn"`
	SecretKey                   string         `json:"secret_key" toml:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration" toml:"access_token_validity_duration"`
	ChallengeTTL                timex.Duration `json:"challenge_ttl" toml:"challenge_ttl"`

	Owner         string `json:"owner" toml:"owner"`
	NetworkSecret string `json:"network_secret" toml:"network_secret"`
	EngineDir     string `json:"engine_dir" toml:"engine_dir"`

	GatewaySigners   []string       `json:"gateway_signers" toml:"gateway_signers"`
	GatewayThreshold int            `json:"gateway_threshold" toml:"gateway_threshold"`
	GatewayKeys      []string       `json:"gateway_keys" toml:"gateway_keys"`
	GatewayDelay     timex.Duration `json:"gateway_delay" toml:"gateway_delay"`
	GatewayQueueSize int            `json:"gateway_queue_size" toml:"gateway_queue_size"`

	DecryptionTimeout timex.Duration `json:"decryption_timeout" toml:"decryption_timeout"`
	ProposalValidity  timex.Duration `json:"proposal_validity" toml:"proposal_validity"`
	RevealGrace       timex.Duration `json:"reveal_grace" toml:"reveal_grace"`
	MinMarketDuration timex.Duration `json:"min_market_duration" toml:"min_market_duration"`
	MaxMarketDuration timex.Duration `json:"max_market_duration" toml:"max_market_duration"`
	MaxVoteWeight     uint64         `json:"max_vote_weight" toml:"max_vote_weight"`
	VoteStake         string         `json:"vote_stake" toml:"vote_stake"`
	CreationFee       string         `json:"creation_fee" toml:"creation_fee"`

	LogLevel        string         `json:"log_level" toml:"log_level"`
	LogFile         string         `json:"log_file" toml:"log_file"`
	MetricsInterval timex.Duration `json:"metrics_interval" toml:"metrics_interval"`

	S3RootUser     string `json:"s3_root_user" toml:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password" toml:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket" toml:"s3_bucket"`
	S3Region       string `json:"s3_region" toml:"s3_region"`
	S3BaseEndpoint string `json:"s3_base_endpoint" toml:"s3_base_endpoint"`
	S3Prefix       string `json:"s3_prefix" toml:"s3_prefix"`
}

// parseFile overlays the file named by -c/-config onto config. Files ending
// in .toml are read as TOML, anything else as JSON. An unreadable or
// malformed file panics, matching the flag layer.
func parseFile(config *Config) {
	path := flagx.ConfigFile()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = toml.Unmarshal(data, c)
	} else {
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.ChallengeTTL, c.ChallengeTTL)

	setString(&config.Owner, c.Owner)
	setString(&config.NetworkSecret, c.NetworkSecret)
	setString(&config.EngineDir, c.EngineDir)

	if c.GatewaySigners != nil {
		config.GatewaySigners = c.GatewaySigners
	}
	if c.GatewayThreshold != 0 {
		config.GatewayThreshold = c.GatewayThreshold
	}
	if c.GatewayKeys != nil {
		config.GatewayKeys = c.GatewayKeys
	}
	setDuration(&config.GatewayDelay, c.GatewayDelay)
	if c.GatewayQueueSize != 0 {
		config.GatewayQueueSize = c.GatewayQueueSize
	}

	setDuration(&config.DecryptionTimeout, c.DecryptionTimeout)
	setDuration(&config.ProposalValidity, c.ProposalValidity)
	setDuration(&config.RevealGrace, c.RevealGrace)
	setDuration(&config.MinMarketDuration, c.MinMarketDuration)
	setDuration(&config.MaxMarketDuration, c.MaxMarketDuration)
	if c.MaxVoteWeight != 0 {
		config.MaxVoteWeight = c.MaxVoteWeight
	}
	setString(&config.VoteStake, c.VoteStake)
	setString(&config.CreationFee, c.CreationFee)

	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFile, c.LogFile)
	setDuration(&config.MetricsInterval, c.MetricsInterval)

	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3Prefix, c.S3Prefix)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
