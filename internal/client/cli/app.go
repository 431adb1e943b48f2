package cli

import (
	"bufio"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/client/client"
	"github.com/dmitrijs2005/blindledger/internal/client/config"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/filex"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
)

// Dialer opens a client for the server at addr.
type Dialer func(addr string) (client.Client, error)

// DialGRPC is the Dialer used outside tests.
func DialGRPC(addr string) (client.Client, error) {
	return client.NewGRPCClient(addr)
}

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

type App struct {
	config  *config.Config
	dial    Dialer
	client  client.Client
	session *session
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, dial Dialer) *App {
	return &App{
		config: cfg,
		dial:   dial,
		reader: bufio.NewReader(os.Stdin),
	}
}

// session is what login leaves behind for later commands.
type session struct {
	Address     ethcommon.Address `json:"address"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// connect dials the server and restores the stored session, if any.
func (a *App) connect(cmd *cobra.Command, _ []string) error {
	if a.client == nil {
		c, err := a.dial(a.config.ServerEndpointAddr)
		if err != nil {
			return fmt.Errorf("connect to %s: %w", a.config.ServerEndpointAddr, err)
		}
		a.client = c
	}

	s, err := a.loadSession()
	if err != nil {
		return err
	}
	if s != nil {
		a.session = s
		a.client.SetAccessToken(s.AccessToken)
	}
	return nil
}

func (a *App) disconnect(cmd *cobra.Command, _ []string) {
	if a.client != nil {
		_ = a.client.Close()
		a.client = nil
	}
}

// context bounds one command by the configured timeout.
func (a *App) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, a.config.Timeout)
}

func (a *App) loadSession() (*session, error) {
	data, err := os.ReadFile(a.config.TokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	s := &session{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("session file %s is corrupt: %w", a.config.TokenFile, err)
	}
	return s, nil
}

func (a *App) saveSession(s *session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := filex.EnsureParentDir(a.config.TokenFile, 0o700); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if err := os.WriteFile(a.config.TokenFile, data, 0o600); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.session = s
	return nil
}

func (a *App) clearSession() error {
	a.session = nil
	if err := os.Remove(a.config.TokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// caller returns the address of the logged-in wallet.
func (a *App) caller() (ethcommon.Address, error) {
	if a.session == nil {
		return ethcommon.Address{}, client.ErrNotLoggedIn
	}
	return a.session.Address, nil
}

// loadKey reads the private key from the configured key file, or prompts
// for it without echo when no file is set.
func (a *App) loadKey(w io.Writer) (*ecdsa.PrivateKey, error) {
	var raw []byte
	if a.config.KeyFile != "" {
		data, err := os.ReadFile(a.config.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		raw = data
	} else {
		secret, err := getSecret("Private key (hex)", w)
		if err != nil {
			return nil, err
		}
		raw = secret
	}
	defer common.WipeByteArray(raw)

	hexKey := strings.TrimPrefix(strings.TrimSpace(string(raw)), "0x")
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}
