package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (a *App) requestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Decryption request tracking",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		a.requestStatusCmd(),
		a.requestTimeoutCmd(),
	)
	return cmd
}

func (a *App) requestStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <request-id>",
		Short: "Show the state of a decryption request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			r, err := a.client.GetRequestStatus(ctx, id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Request:   %d (%s)\n", r.Id, r.Kind)
			switch {
			case r.ProposalId != 0:
				fmt.Fprintf(w, "Proposal:  %d\n", r.ProposalId)
			case r.MarketId != "":
				fmt.Fprintf(w, "Market:    %s\n", r.MarketId)
			}
			fmt.Fprintf(w, "Requester: %s\n", r.Requester)
			fmt.Fprintf(w, "Handles:   %d\n", len(r.Handles))
			fmt.Fprintf(w, "State:     %s\n", r.State)
			fmt.Fprintf(w, "Created:   %s\n", localTime(r.CreatedAt))
			if r.FinalizedAt != nil {
				fmt.Fprintf(w, "Finalized: %s\n", localTime(r.FinalizedAt))
			}
			return nil
		},
	}
}

func (a *App) requestTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeout <request-id>",
		Short: "Expire a request the gateway never answered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			if err := a.client.HandleTimeout(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Request %d timed out\n", id)
			return nil
		},
	}
}

// localTime formats a server timestamp in the local zone.
func localTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format(time.RFC1123)
}
