package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/blindledger/internal/flagx"
	"github.com/dmitrijs2005/blindledger/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout may be
// a string like "30s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	KeyFile            string         `json:"key_file"`
	TokenFile          string         `json:"token_file"`
	NetworkSecret      string         `json:"network_secret"`
	Timeout            timex.Duration `json:"timeout"`
}

// parseJson overlays cfg with the keys present in the file named by
// -c/--config. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.KeyFile != "" {
		cfg.KeyFile = jc.KeyFile
	}
	if jc.TokenFile != "" {
		cfg.TokenFile = jc.TokenFile
	}
	if jc.NetworkSecret != "" {
		cfg.NetworkSecret = jc.NetworkSecret
	}
	if jc.Timeout.Duration != 0 {
		cfg.Timeout = jc.Timeout.Duration
	}
}
