package grpc

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/fhe"
	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/server/models"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// parseAmount reads a decimal wei string. An empty string is no amount.
func parseAmount(field, s string) (*uint256.Int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", field, s, common.ErrInvalidInput)
	}
	return v, nil
}

func amount(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

// parseAddress reads a 0x-hex address. The zero address is left to the
// ledger's own checks.
func parseAddress(field, s string) (ethcommon.Address, error) {
	if !ethcommon.IsHexAddress(s) {
		return ethcommon.Address{}, fmt.Errorf("%s %q: %w", field, s, common.ErrInvalidInput)
	}
	return ethcommon.HexToAddress(s), nil
}

func parseHandle(b []byte) (fhe.Handle, error) {
	var h fhe.Handle
	if len(b) != len(h) {
		return h, fmt.Errorf("handle of %d bytes: %w", len(b), common.ErrInvalidInput)
	}
	copy(h[:], b)
	return h, nil
}

func handleBytes(h fhe.Handle) []byte {
	if h.IsZero() {
		return nil
	}
	return h.Bytes()
}

func inputFromPB(in *pb.EncryptedInput) fhe.Input {
	return fhe.Input{Ciphertext: in.GetCiphertext(), Proof: in.GetProof()}
}

func parseSide(s string) models.Outcome {
	switch s {
	case "yes":
		return models.OutcomeYes
	case "no":
		return models.OutcomeNo
	default:
		return models.OutcomeUnknown
	}
}

func timestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func teamToPB(t *models.Team) *pb.Team {
	return &pb.Team{
		Id:        t.ID,
		Name:      t.Name,
		Manager:   t.Manager.Hex(),
		SalaryCap: handleBytes(t.SalaryCap),
		Payroll:   handleBytes(t.Payroll),
		Active:    t.Active,
		CreatedAt: timestamp(t.CreatedAt),
	}
}

func athleteToPB(a *models.Athlete) *pb.Athlete {
	return &pb.Athlete{
		Id:            a.ID,
		TeamId:        a.TeamID,
		Name:          a.Name,
		Position:      a.Position,
		Wallet:        a.Wallet.Hex(),
		Salary:        handleBytes(a.Salary),
		Bonus:         handleBytes(a.Bonus),
		ContractStart: timestamp(a.ContractStart),
		ContractEnd:   timestamp(a.ContractEnd),
		Active:        a.Active,
	}
}

func proposalToPB(p *models.Proposal) *pb.Proposal {
	return &pb.Proposal{
		Id:               p.ID,
		AthleteId:        p.AthleteID,
		TeamId:           p.TeamID,
		Proposer:         p.Proposer.Hex(),
		Salary:           handleBytes(p.Salary),
		Bonus:            handleBytes(p.Bonus),
		DurationMonths:   p.DurationMonths,
		Status:           p.Status.String(),
		Reason:           p.Reason.String(),
		RequestId:        p.RequestID,
		CallbackReceived: p.CallbackReceived,
		CreatedAt:        timestamp(p.CreatedAt),
		ExpiresAt:        timestamp(p.ExpiresAt),
	}
}

func marketToPB(m *models.Market) *pb.Market {
	return &pb.Market{
		Id:          m.ID,
		Creator:     m.Creator.Hex(),
		Question:    m.Question,
		VoteStake:   amount(m.VoteStake),
		PrizePool:   amount(m.PrizePool),
		PaidOut:     amount(m.PaidOut),
		YesVoters:   m.YesVoters,
		NoVoters:    m.NoVoters,
		Status:      m.Status.String(),
		RequestId:   m.RequestID,
		RevealedYes: m.RevealedYes,
		RevealedNo:  m.RevealedNo,
		Outcome:     m.Outcome.String(),
		CreatedAt:   timestamp(m.CreatedAt),
		ExpiresAt:   timestamp(m.ExpiresAt),
	}
}

func voteToPB(v *models.Vote) *pb.Vote {
	return &pb.Vote{
		MarketId: v.MarketID,
		Voter:    v.Voter.Hex(),
		Side:     v.Side.String(),
		Weight:   handleBytes(v.Weight),
		Stake:    amount(v.Stake),
		Claimed:  v.Claimed,
		CastAt:   timestamp(v.CastAt),
	}
}

func requestToPB(r *models.DecryptionRequest) *pb.Request {
	out := &pb.Request{
		Id:         r.ID,
		Kind:       r.Target.Kind.String(),
		ProposalId: r.Target.ProposalID,
		MarketId:   r.Target.MarketID,
		Requester:  r.Requester.Hex(),
		Handles:    make([][]byte, 0, len(r.Handles)),
		State:      r.State().String(),
		CreatedAt:  timestamp(r.CreatedAt),
	}
	for _, h := range r.Handles {
		out.Handles = append(out.Handles, h.Bytes())
	}
	if r.Finalized() {
		out.FinalizedAt = timestamp(r.FinalizedAt)
	}
	return out
}

func settingsToPB(s *models.Settings) *pb.Settings {
	return &pb.Settings{
		VoteStake:       amount(s.VoteStake),
		CreationFee:     amount(s.CreationFee),
		FeesCollected:   amount(s.FeesCollected),
		Season:          s.Season,
		SeasonStartedAt: timestamp(s.SeasonStartedAt),
	}
}
