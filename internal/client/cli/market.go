package cli

import (
	"fmt"
	"io"
	"time"

	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	"github.com/dmitrijs2005/blindledger/internal/flagx"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/durationpb"
)

func (a *App) marketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Belief market management",
		Args:  cobra.MinimumNArgs(1),
	}

	cmd.AddCommand(
		a.marketCreateCmd(),
		a.marketVoteCmd(),
		a.marketRevealCmd(),
		a.marketClaimCmd("claim-prize", "Collect a share of the pool after a win", a.claimPrize),
		a.marketClaimCmd("claim-refund", "Take the stake back from a tied, failed or unrevealed market", a.claimRefund),
		a.marketShowCmd(),
	)
	return cmd
}

func (a *App) marketCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <market-id>",
		Short: "Open a new market",
		Args:  cobra.ExactArgs(1),
		RunE:  a.marketCreate,
	}
	cmd.Flags().StringP("question", "q", "", "question voters answer yes or no (prompted when empty)")
	cmd.Flags().DurationP("duration", "d", 24*time.Hour, "how long voting stays open")
	cmd.Flags().StringP("fee", "f", "", "creation fee in ether (default: current fee)")
	return cmd
}

func (a *App) marketCreate(cmd *cobra.Command, args []string) error {
	question, _ := cmd.Flags().GetString("question")
	duration, _ := cmd.Flags().GetDuration("duration")
	feeStr, _ := cmd.Flags().GetString("fee")

	if question == "" {
		q, err := GetSimpleText(a.reader, "Market question", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		question = q
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	fee, err := a.amountOrDefault(cmd, feeStr, func(s *pb.Settings) string { return s.CreationFee })
	if err != nil {
		return err
	}

	m, err := a.client.CreateMarket(ctx, &pb.CreateMarketRequest{
		Id:       args[0],
		Question: question,
		Duration: durationpb.New(duration),
		Fee:      fee,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Market %s open until %s\n", m.Id, localTime(m.ExpiresAt))
	return nil
}

func (a *App) marketVoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vote <market-id>",
		Short: "Cast an encrypted weighted vote",
		Args:  cobra.ExactArgs(1),
		RunE:  a.marketVote,
	}
	cmd.Flags().StringP("side", "s", "", "yes or no")
	cmd.MarkFlagRequired("side")
	cmd.Flags().Uint64P("weight", "w", 1, "vote weight, encrypted before sending")
	cmd.Flags().StringP("stake", "a", "", "stake in ether (default: current vote stake)")
	return cmd
}

func (a *App) marketVote(cmd *cobra.Command, args []string) error {
	side, _ := cmd.Flags().GetString("side")
	weight, _ := cmd.Flags().GetUint64("weight")
	stakeStr, _ := cmd.Flags().GetString("stake")

	if side != "yes" && side != "no" {
		return errors.Wrapf(common.ErrInvalidInput, "side %q", side)
	}

	voter, err := a.caller()
	if err != nil {
		return err
	}

	in, err := a.encrypt(weight, fhe.TypeUint64, voter)
	if err != nil {
		return err
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	stake, err := a.amountOrDefault(cmd, stakeStr, func(s *pb.Settings) string { return s.VoteStake })
	if err != nil {
		return err
	}

	if err := a.client.Vote(ctx, &pb.VoteRequest{MarketId: args[0], Side: side, Weight: in, Stake: stake}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Voted %s on %s with stake %s\n", side, args[0], ether(stake))
	return nil
}

// encrypt seals v for submission by owner under the network input key.
func (a *App) encrypt(v uint64, t fhe.Type, owner ethcommon.Address) (*pb.EncryptedInput, error) {
	key, err := fhe.DeriveNetworkKey(a.config.NetworkSecret)
	if err != nil {
		return nil, err
	}
	enc, err := fhe.NewInputEncryptor(key)
	if err != nil {
		return nil, err
	}
	in, err := enc.Encrypt(v, t, owner)
	if err != nil {
		return nil, err
	}
	return &pb.EncryptedInput{Ciphertext: in.Ciphertext, Proof: in.Proof}, nil
}

// amountOrDefault converts an ether flag to wei, or takes the server's
// current value when the flag is empty.
func (a *App) amountOrDefault(cmd *cobra.Command, eth string, current func(*pb.Settings) string) (string, error) {
	if eth != "" {
		v, err := flagx.ParseEther(eth)
		if err != nil {
			return "", errors.Wrapf(common.ErrInvalidInput, "%v", err)
		}
		return v.Dec(), nil
	}

	ctx, cancel := a.context(cmd)
	defer cancel()

	s, err := a.client.GetSettings(ctx)
	if err != nil {
		return "", err
	}
	return current(s), nil
}

func (a *App) marketRevealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reveal <market-id>",
		Short: "Ask the gateway to decrypt the tally of an expired market",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			id, err := a.client.RequestTallyReveal(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Decryption request %d submitted\n", id)
			return nil
		},
	}
}

func (a *App) marketClaimCmd(use, short string, claim func(cmd *cobra.Command, marketID string) (string, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <market-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := claim(cmd, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Received %s\n", ether(amount))
			return nil
		},
	}
}

func (a *App) claimPrize(cmd *cobra.Command, marketID string) (string, error) {
	ctx, cancel := a.context(cmd)
	defer cancel()
	return a.client.ClaimPrize(ctx, marketID)
}

func (a *App) claimRefund(cmd *cobra.Command, marketID string) (string, error) {
	ctx, cancel := a.context(cmd)
	defer cancel()
	return a.client.ClaimRefund(ctx, marketID)
}

func (a *App) marketShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <market-id>",
		Short: "Show a market and, optionally, a vote in it",
		Args:  cobra.ExactArgs(1),
		RunE:  a.marketShow,
	}
	cmd.Flags().String("voter", "", `voter address, or "me" for the logged-in wallet`)
	return cmd
}

func (a *App) marketShow(cmd *cobra.Command, args []string) error {
	voterStr, _ := cmd.Flags().GetString("voter")

	ctx, cancel := a.context(cmd)
	defer cancel()

	m, err := a.client.GetMarket(ctx, args[0])
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	printMarket(w, m)

	if voterStr == "" {
		return nil
	}

	var voter ethcommon.Address
	switch {
	case voterStr == "me":
		if voter, err = a.caller(); err != nil {
			return err
		}
	case ethcommon.IsHexAddress(voterStr):
		voter = ethcommon.HexToAddress(voterStr)
	default:
		return errors.Wrapf(common.ErrInvalidInput, "voter %q", voterStr)
	}

	v, err := a.client.GetVote(ctx, &pb.VoteLookup{MarketId: args[0], Voter: voter.Hex()})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Vote:       %s, stake %s, claimed %t\n", v.Side, ether(v.Stake), v.Claimed)
	return nil
}

func printMarket(w io.Writer, m *pb.Market) {
	fmt.Fprintf(w, "Market:     %s\n", m.Id)
	fmt.Fprintf(w, "Question:   %s\n", m.Question)
	fmt.Fprintf(w, "Creator:    %s\n", m.Creator)
	fmt.Fprintf(w, "Status:     %s\n", m.Status)
	fmt.Fprintf(w, "Expires:    %s\n", localTime(m.ExpiresAt))
	fmt.Fprintf(w, "Voters:     %d yes, %d no\n", m.YesVoters, m.NoVoters)
	fmt.Fprintf(w, "Prize pool: %s (paid out %s)\n", ether(m.PrizePool), ether(m.PaidOut))
	if m.RequestId != 0 {
		fmt.Fprintf(w, "Request:    %d\n", m.RequestId)
	}
	if m.Status == "resolved" {
		fmt.Fprintf(w, "Tally:      %d yes, %d no\n", m.RevealedYes, m.RevealedNo)
		fmt.Fprintf(w, "Outcome:    %s\n", m.Outcome)
	}
}
