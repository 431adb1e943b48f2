package cli

import (
	"strconv"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the ledgerctl command tree on a.
func NewRootCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "ledgerctl",
		Short:             "blindledger client tools",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.connect,
		PersistentPostRun: a.disconnect,
	}
	a.config.BindFlags(cmd)

	cmd.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.settingsCmd(),
		a.marketCmd(),
		a.requestCmd(),
		a.proposalCmd(),
	)
	return cmd
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(common.ErrInvalidInput, "id %q", s)
	}
	return id, nil
}
