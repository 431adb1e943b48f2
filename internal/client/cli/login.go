package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/flagx"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign a login challenge and store the access token",
		Args:  cobra.NoArgs,
		RunE:  a.login,
	}
}

func (a *App) login(cmd *cobra.Command, _ []string) error {
	key, err := a.loadKey(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	token, expiresAt, err := a.client.Login(ctx, key)
	if err != nil {
		return err
	}

	addr := crypto.PubkeyToAddress(key.PublicKey)
	if err := a.saveSession(&session{Address: addr, AccessToken: token, ExpiresAt: expiresAt}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s until %s\n", addr.Hex(), expiresAt.Local().Format(time.RFC1123))
	return nil
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.clearSession(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (a *App) settingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Show market parameters and the current season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			s, err := a.client.GetSettings(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Vote stake:     %s\n", ether(s.VoteStake))
			fmt.Fprintf(w, "Creation fee:   %s\n", ether(s.CreationFee))
			fmt.Fprintf(w, "Fees collected: %s\n", ether(s.FeesCollected))
			fmt.Fprintf(w, "Season:         %d (since %s)\n", s.Season, s.SeasonStartedAt.AsTime().Local().Format(time.RFC1123))
			return nil
		},
	}
}

// ether renders a decimal wei string in ether. Unparseable input is shown
// as is.
func ether(wei string) string {
	v, err := uint256.FromDecimal(wei)
	if err != nil {
		return wei
	}
	return flagx.FormatEther(v) + " ETH"
}
