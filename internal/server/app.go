// Package server wires the ledger together and runs it: storage, the
// encrypted-value engine, the decryption gateway, event sinks, metrics and
// the gRPC endpoint, with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/filex"
	"github.com/dmitrijs2005/blindledger/internal/flagx"
	"github.com/dmitrijs2005/blindledger/internal/gateway"
	"github.com/dmitrijs2005/blindledger/internal/logging"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	"github.com/dmitrijs2005/blindledger/internal/server/config"
	"github.com/dmitrijs2005/blindledger/internal/server/events"
	"github.com/dmitrijs2005/blindledger/internal/server/ledger"
	"github.com/dmitrijs2005/blindledger/internal/server/metrics"
	"github.com/dmitrijs2005/blindledger/internal/server/repositories/repomanager"
	ethcommon "github.com/ethereum/go-ethereum/common"

	gs "github.com/dmitrijs2005/blindledger/internal/server/grpc"
)

const challengeCacheSize = 4096

type App struct {
	config     *config.Config
	logger     logging.Logger
	ledger     *ledger.Ledger
	relayer    *gateway.Relayer
	metrics    *metrics.Metrics
	challenger *auth.Challenger
	closers    []io.Closer
}

// NewApp builds every component from c. On error, whatever was already
// opened is closed again.
func NewApp(ctx context.Context, c *config.Config) (_ *App, err error) {
	logger, logCloser, err := logging.New(logging.Options{Level: c.LogLevel, File: c.LogFile, MaxSizeMB: 100, MaxBackups: 3})
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	app := &App{config: c, logger: logger, closers: []io.Closer{logCloser}}
	defer func() {
		if err != nil {
			app.close()
		}
	}()

	ledgerCfg, err := ledgerConfig(c)
	if err != nil {
		return nil, err
	}

	repos, err := app.openRepositories(ctx)
	if err != nil {
		return nil, err
	}

	key, err := fhe.DeriveNetworkKey(c.NetworkSecret)
	if err != nil {
		return nil, fmt.Errorf("network key error: %w", err)
	}
	engineDir := c.EngineDir
	if engineDir != "" {
		if engineDir, err = filex.EnsureDir(engineDir, 0o700); err != nil {
			return nil, fmt.Errorf("engine dir error: %w", err)
		}
	} else {
		logger.Warn(ctx, "No engine directory configured, ciphertexts are kept in memory")
	}
	sim, err := fhe.OpenSimulator(engineDir, key)
	if err != nil {
		return nil, fmt.Errorf("engine init error: %w", err)
	}
	app.closers = append(app.closers, sim)

	verifier, oracle, err := app.gateway(sim)
	if err != nil {
		return nil, err
	}

	sink, err := app.eventSink(ctx)
	if err != nil {
		return nil, err
	}

	app.metrics = metrics.New()
	app.ledger, err = ledger.New(ledgerCfg, ledger.Deps{
		Repos:     repos,
		Engine:    sim,
		Decryptor: sim,
		Verifier:  verifier,
		Oracle:    oracle,
		Events:    sink,
		Metrics:   app.metrics,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}
	if err := app.ledger.Init(ctx); err != nil {
		return nil, fmt.Errorf("ledger init error: %w", err)
	}

	app.challenger = auth.NewChallenger(challengeCacheSize, c.ChallengeTTL)
	return app, nil
}

// ledgerConfig translates server settings into ledger parameters.
func ledgerConfig(c *config.Config) (ledger.Config, error) {
	cfg := ledger.DefaultConfig()
	if !ethcommon.IsHexAddress(c.Owner) {
		return cfg, fmt.Errorf("owner %q is not an address", c.Owner)
	}
	cfg.Owner = ethcommon.HexToAddress(c.Owner)
	cfg.DecryptionTimeout = c.DecryptionTimeout
	cfg.ProposalValidity = c.ProposalValidity
	cfg.RevealGrace = c.RevealGrace
	cfg.MinMarketDuration = c.MinMarketDuration
	cfg.MaxMarketDuration = c.MaxMarketDuration
	cfg.MaxVoteWeight = c.MaxVoteWeight

	var err error
	if cfg.VoteStake, err = flagx.ParseEther(c.VoteStake); err != nil {
		return cfg, fmt.Errorf("vote stake: %w", err)
	}
	if cfg.CreationFee, err = flagx.ParseEther(c.CreationFee); err != nil {
		return cfg, fmt.Errorf("creation fee: %w", err)
	}
	if cfg.VoteStake.IsZero() {
		return cfg, errors.New("vote stake must be positive")
	}
	return cfg, nil
}

func (app *App) openRepositories(ctx context.Context) (repomanager.RepositoryManager, error) {
	if app.config.DatabaseDSN == "" {
		app.logger.Warn(ctx, "No database configured, ledger state is kept in memory")
		return repomanager.NewInMemoryRepositoryManager(), nil
	}

	db, err := repomanager.OpenPostgres(ctx, app.config.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	repos := repomanager.NewPostgresRepositoryManager(db)
	app.closers = append(app.closers, repos)

	if err := repos.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}
	return repos, nil
}

// gateway builds the callback verifier and the oracle. With gateway keys
// configured an in-process relayer answers requests; otherwise requests
// wait for an external gateway. Trusted signers default to the addresses
// of the configured keys.
func (app *App) gateway(d fhe.Decryptor) (*gateway.Verifier, gateway.Oracle, error) {
	c := app.config

	signers := make([]*gateway.Signer, 0, len(c.GatewayKeys))
	for i, k := range c.GatewayKeys {
		s, err := gateway.NewSigner(k)
		if err != nil {
			return nil, nil, fmt.Errorf("gateway key %d: %w", i, err)
		}
		signers = append(signers, s)
	}

	trusted := make([]ethcommon.Address, 0, len(c.GatewaySigners))
	for _, a := range c.GatewaySigners {
		if !ethcommon.IsHexAddress(a) {
			return nil, nil, fmt.Errorf("gateway signer %q is not an address", a)
		}
		trusted = append(trusted, ethcommon.HexToAddress(a))
	}
	if len(trusted) == 0 {
		for _, s := range signers {
			trusted = append(trusted, s.Address())
		}
	}

	verifier, err := gateway.NewVerifier(trusted, c.GatewayThreshold)
	if err != nil {
		return nil, nil, err
	}

	if len(signers) == 0 {
		return verifier, gateway.NewMailbox(app.logger), nil
	}
	app.relayer, err = gateway.NewRelayer(d, signers, c.GatewayQueueSize, c.GatewayDelay, app.logger)
	if err != nil {
		return nil, nil, err
	}
	return verifier, app.relayer, nil
}

// eventSink logs every event and, with a bucket configured, archives each
// batch to S3.
func (app *App) eventSink(ctx context.Context) (events.Sink, error) {
	sinks := events.Multi{events.NewLogSink(app.logger)}
	c := app.config
	if c.S3Bucket == "" {
		return sinks, nil
	}
	client, err := events.NewS3Client(ctx, events.S3Options{
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		Prefix:       c.S3Prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("s3 init error: %w", err)
	}
	return append(sinks, events.NewS3Sink(client, c.S3Bucket, c.S3Prefix)), nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.ledger, app.challenger,
		app.config.SecretKey, app.config.AccessTokenValidityDuration)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a signal arrives, then waits for
// every loop to stop and releases resources.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.relayer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.relayer.Run(ctx, app.ledger)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.metrics.Report(ctx, app.logger, app.config.MetricsInterval)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	app.close()
}

func (app *App) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			app.logger.Error(context.Background(), "close error", "error", err)
		}
	}
	app.closers = nil
}
