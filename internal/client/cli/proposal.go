package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) proposalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proposal",
		Short: "Contract proposal management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		a.proposalShowCmd(),
		a.proposalRequestDecryptionCmd(),
		a.proposalActionCmd("approve", "Accept revealed terms as the athlete's new contract", "approved",
			func(ctx context.Context, id uint64) error { return a.client.ApproveProposal(ctx, id) }),
		a.proposalActionCmd("reject", "Decline a pending proposal", "rejected",
			func(ctx context.Context, id uint64) error { return a.client.RejectProposal(ctx, id) }),
		a.proposalActionCmd("withdraw", "Close a proposal that expired while pending", "withdrawn",
			func(ctx context.Context, id uint64) error { return a.client.EmergencyWithdraw(ctx, id) }),
	)
	return cmd
}

func (a *App) proposalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <proposal-id>",
		Short: "Show a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			p, err := a.client.GetProposal(ctx, id)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Proposal: %d\n", p.Id)
			fmt.Fprintf(w, "Athlete:  %d (team %d)\n", p.AthleteId, p.TeamId)
			fmt.Fprintf(w, "Proposer: %s\n", p.Proposer)
			fmt.Fprintf(w, "Duration: %d months\n", p.DurationMonths)
			if p.Reason != "" {
				fmt.Fprintf(w, "Status:   %s (%s)\n", p.Status, p.Reason)
			} else {
				fmt.Fprintf(w, "Status:   %s\n", p.Status)
			}
			if p.RequestId != 0 {
				fmt.Fprintf(w, "Request:  %d, revealed %t\n", p.RequestId, p.CallbackReceived)
			}
			fmt.Fprintf(w, "Expires:  %s\n", localTime(p.ExpiresAt))
			return nil
		},
	}
}

func (a *App) proposalRequestDecryptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request-decryption <proposal-id>",
		Short: "Ask the gateway to reveal the proposed terms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			reqID, err := a.client.RequestProposalDecryption(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decryption request %d submitted\n", reqID)
			return nil
		},
	}
}

func (a *App) proposalActionCmd(use, short, done string, action func(ctx context.Context, id uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <proposal-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx, cancel := a.context(cmd)
			defer cancel()

			if err := action(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Proposal %d %s\n", id, done)
			return nil
		},
	}
}
