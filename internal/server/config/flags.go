package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/blindledger/internal/flagx"
)

// serverFlags are the short flags parseFlags understands.
var serverFlags = []string{"-a", "-d", "-s", "-t", "-o", "-n", "-m", "-w", "-q", "-k", "-l", "-u", "-p", "-b", "-g", "-e"}

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN; empty keeps state in memory
//	-s string     JWT HMAC secret key
//	-t duration   access token validity (e.g., "30m")
//	-o string     owner address
//	-n string     network secret the engine key is derived from
//	-m string     engine ciphertext store directory
//	-w list       trusted gateway signer addresses, comma separated
//	-q int        gateway signature threshold
//	-k list       in-process gateway private keys, comma separated
//	-l string     log level (debug|info|warn|error)
//	-u string     S3 root user
//	-p string     S3 root password
//	-b string     S3 bucket; empty disables the event archive
//	-g string     S3 region
//	-e string     S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//
// Only these flags are picked out of os.Args (via flagx.FilterArgs), so the
// -c config flag and unrelated arguments do not collide.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], serverFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.AccessTokenValidityDuration, "t", config.AccessTokenValidityDuration, "access token validity")

	fs.StringVar(&config.Owner, "o", config.Owner, "owner address")
	fs.StringVar(&config.NetworkSecret, "n", config.NetworkSecret, "network secret")
	fs.StringVar(&config.EngineDir, "m", config.EngineDir, "engine store directory")

	signers := flagx.StringList(config.GatewaySigners)
	keys := flagx.StringList(config.GatewayKeys)
	fs.Var(&signers, "w", "trusted gateway signers")
	fs.IntVar(&config.GatewayThreshold, "q", config.GatewayThreshold, "gateway signature threshold")
	fs.Var(&keys, "k", "in-process gateway keys")

	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 root bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 root region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.GatewaySigners = signers
	config.GatewayKeys = keys
}
