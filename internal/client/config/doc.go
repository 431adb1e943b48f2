// Package config loads runtime configuration for ledgerctl.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Persistent command-line flags bound by (*Config).BindFlags.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "key_file": "/home/alice/.blindledger/key",
//	  "token_file": "/home/alice/.config/blindledger/token",
//	  "network_secret": "blindledger-dev-network",
//	  "timeout": "30s"
//	}
package config
