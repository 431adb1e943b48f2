package grpc

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/common"
	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	"github.com/dmitrijs2005/blindledger/internal/server/ledger"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ pb.LedgerServiceServer = (*GRPCServer)(nil)

func (s *GRPCServer) caller(ctx context.Context) (ethcommon.Address, error) {
	addr, ok := CallerFromContext(ctx)
	if !ok {
		return ethcommon.Address{}, status.Error(codes.Unauthenticated, "missing token")
	}
	return addr, nil
}

// Authentication

func (s *GRPCServer) Challenge(ctx context.Context, req *pb.ChallengeRequest) (*pb.ChallengeResponse, error) {
	addr, err := parseAddress("address", req.GetAddress())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Challenge_FullMethodName, err)
	}
	msg, exp, err := s.challenger.Issue(addr)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Challenge_FullMethodName, err)
	}
	return &pb.ChallengeResponse{Message: msg, ExpiresAt: timestamppb.New(exp)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	addr, err := parseAddress("address", req.GetAddress())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Login_FullMethodName, err)
	}
	if err := s.challenger.Verify(addr, req.GetSignature()); err != nil {
		s.logger.Info(ctx, "login rejected", "address", addr.Hex(), "error", err)
		return nil, status.Error(codes.Unauthenticated, common.ErrUnauthorized.Error())
	}

	token, exp, err := auth.GenerateToken(addr, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Login_FullMethodName, err)
	}
	s.logger.Info(ctx, "Logged in", "address", addr.Hex())
	return &pb.LoginResponse{AccessToken: token, ExpiresAt: timestamppb.New(exp)}, nil
}

// Registry

func (s *GRPCServer) RegisterTeam(ctx context.Context, req *pb.RegisterTeamRequest) (*pb.IDResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	manager, err := parseAddress("manager", req.GetManager())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RegisterTeam_FullMethodName, err)
	}
	id, err := s.ledger.RegisterTeam(ctx, caller, ledger.RegisterTeamParams{
		Name:      req.GetName(),
		Manager:   manager,
		SalaryCap: inputFromPB(req.GetSalaryCap()),
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RegisterTeam_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) RegisterAthlete(ctx context.Context, req *pb.RegisterAthleteRequest) (*pb.IDResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	wallet, err := parseAddress("wallet", req.GetWallet())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RegisterAthlete_FullMethodName, err)
	}
	id, err := s.ledger.RegisterAthlete(ctx, caller, ledger.RegisterAthleteParams{
		TeamID:         req.GetTeamId(),
		Name:           req.GetName(),
		Position:       req.GetPosition(),
		Wallet:         wallet,
		Salary:         inputFromPB(req.GetSalary()),
		Bonus:          inputFromPB(req.GetBonus()),
		DurationMonths: req.GetDurationMonths(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RegisterAthlete_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) UpdateCompensation(ctx context.Context, req *pb.UpdateCompensationRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	err = s.ledger.UpdateCompensation(ctx, caller, req.GetAthleteId(), inputFromPB(req.GetSalary()), inputFromPB(req.GetBonus()))
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_UpdateCompensation_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeactivateTeam(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.DeactivateTeam(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_DeactivateTeam_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) DeactivateAthlete(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.DeactivateAthlete(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_DeactivateAthlete_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RecomputePayroll(ctx context.Context, req *pb.IDRequest) (*pb.HandleResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.ledger.RecomputePayroll(ctx, caller, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RecomputePayroll_FullMethodName, err)
	}
	return &pb.HandleResponse{Handle: h.Bytes()}, nil
}

func (s *GRPCServer) CheckCompliance(ctx context.Context, req *pb.IDRequest) (*pb.HandleResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.ledger.CheckCompliance(ctx, caller, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_CheckCompliance_FullMethodName, err)
	}
	return &pb.HandleResponse{Handle: h.Bytes()}, nil
}

func (s *GRPCServer) StartNewSeason(ctx context.Context, _ *emptypb.Empty) (*pb.SeasonResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	season, retired, err := s.ledger.StartNewSeason(ctx, caller)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_StartNewSeason_FullMethodName, err)
	}
	return &pb.SeasonResponse{Season: season, Retired: retired}, nil
}

func (s *GRPCServer) GetTeam(ctx context.Context, req *pb.IDRequest) (*pb.Team, error) {
	t, err := s.ledger.GetTeam(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetTeam_FullMethodName, err)
	}
	return teamToPB(t), nil
}

func (s *GRPCServer) GetAthlete(ctx context.Context, req *pb.IDRequest) (*pb.Athlete, error) {
	a, err := s.ledger.GetAthlete(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetAthlete_FullMethodName, err)
	}
	return athleteToPB(a), nil
}

func (s *GRPCServer) ListAthletes(ctx context.Context, req *pb.IDRequest) (*pb.AthleteList, error) {
	roster, err := s.ledger.ListAthletes(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_ListAthletes_FullMethodName, err)
	}
	out := &pb.AthleteList{Athletes: make([]*pb.Athlete, 0, len(roster))}
	for _, a := range roster {
		out.Athletes = append(out.Athletes, athleteToPB(a))
	}
	return out, nil
}

// Proposals

func (s *GRPCServer) Propose(ctx context.Context, req *pb.ProposeRequest) (*pb.IDResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.ledger.Propose(ctx, caller, ledger.ProposeParams{
		AthleteID:      req.GetAthleteId(),
		TeamID:         req.GetTeamId(),
		Salary:         inputFromPB(req.GetSalary()),
		Bonus:          inputFromPB(req.GetBonus()),
		DurationMonths: req.GetDurationMonths(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Propose_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) RequestProposalDecryption(ctx context.Context, req *pb.IDRequest) (*pb.IDResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.ledger.RequestProposalDecryption(ctx, caller, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RequestProposalDecryption_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) ApproveProposal(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.ApproveProposal(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_ApproveProposal_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RejectProposal(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.RejectProposal(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RejectProposal_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) EmergencyWithdraw(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.EmergencyWithdraw(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_EmergencyWithdraw_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetProposal(ctx context.Context, req *pb.IDRequest) (*pb.Proposal, error) {
	p, err := s.ledger.GetProposal(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetProposal_FullMethodName, err)
	}
	return proposalToPB(p), nil
}

// Markets

func (s *GRPCServer) CreateMarket(ctx context.Context, req *pb.CreateMarketRequest) (*pb.Market, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	fee, err := parseAmount("fee", req.GetFee())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_CreateMarket_FullMethodName, err)
	}
	m, err := s.ledger.CreateMarket(ctx, caller, ledger.CreateMarketParams{
		ID:       req.GetId(),
		Question: req.GetQuestion(),
		Duration: req.GetDuration().AsDuration(),
		Fee:      fee,
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_CreateMarket_FullMethodName, err)
	}
	return marketToPB(m), nil
}

func (s *GRPCServer) Vote(ctx context.Context, req *pb.VoteRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	stake, err := parseAmount("stake", req.GetStake())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Vote_FullMethodName, err)
	}
	err = s.ledger.Vote(ctx, caller, ledger.VoteParams{
		MarketID: req.GetMarketId(),
		Side:     parseSide(req.GetSide()),
		Weight:   inputFromPB(req.GetWeight()),
		Stake:    stake,
	})
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Vote_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) RequestTallyReveal(ctx context.Context, req *pb.MarketRequest) (*pb.IDResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := s.ledger.RequestTallyReveal(ctx, caller, req.GetMarketId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_RequestTallyReveal_FullMethodName, err)
	}
	return &pb.IDResponse{Id: id}, nil
}

func (s *GRPCServer) ClaimPrize(ctx context.Context, req *pb.MarketRequest) (*pb.AmountResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.ledger.ClaimPrize(ctx, caller, req.GetMarketId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_ClaimPrize_FullMethodName, err)
	}
	return &pb.AmountResponse{Amount: amount(v)}, nil
}

func (s *GRPCServer) ClaimRefund(ctx context.Context, req *pb.MarketRequest) (*pb.AmountResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	v, err := s.ledger.ClaimRefund(ctx, caller, req.GetMarketId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_ClaimRefund_FullMethodName, err)
	}
	return &pb.AmountResponse{Amount: amount(v)}, nil
}

func (s *GRPCServer) GetMarket(ctx context.Context, req *pb.MarketRequest) (*pb.Market, error) {
	m, err := s.ledger.GetMarket(ctx, req.GetMarketId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetMarket_FullMethodName, err)
	}
	return marketToPB(m), nil
}

func (s *GRPCServer) GetVote(ctx context.Context, req *pb.VoteLookup) (*pb.Vote, error) {
	voter, err := parseAddress("voter", req.GetVoter())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetVote_FullMethodName, err)
	}
	v, err := s.ledger.GetVote(ctx, req.GetMarketId(), voter)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetVote_FullMethodName, err)
	}
	return voteToPB(v), nil
}

func (s *GRPCServer) SetMarketParams(ctx context.Context, req *pb.MarketParamsRequest) (*emptypb.Empty, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	stake, err := parseAmount("vote stake", req.GetVoteStake())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_SetMarketParams_FullMethodName, err)
	}
	fee, err := parseAmount("creation fee", req.GetCreationFee())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_SetMarketParams_FullMethodName, err)
	}
	if err := s.ledger.SetMarketParams(ctx, caller, stake, fee); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_SetMarketParams_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetSettings(ctx context.Context, _ *emptypb.Empty) (*pb.Settings, error) {
	st, err := s.ledger.Settings(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetSettings_FullMethodName, err)
	}
	return settingsToPB(st), nil
}

// Decryption requests

// Fulfill is the callback entry point for an out-of-process gateway. The
// proof authenticates it, not the caller.
func (s *GRPCServer) Fulfill(ctx context.Context, req *pb.FulfillRequest) (*emptypb.Empty, error) {
	if err := s.ledger.HandleCallback(ctx, req.GetRequestId(), req.GetCleartext(), req.GetProof()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_Fulfill_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) HandleTimeout(ctx context.Context, req *pb.IDRequest) (*emptypb.Empty, error) {
	caller, _ := CallerFromContext(ctx)
	if err := s.ledger.HandleTimeout(ctx, caller, req.GetId()); err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_HandleTimeout_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) GetRequestStatus(ctx context.Context, req *pb.IDRequest) (*pb.Request, error) {
	r, err := s.ledger.GetRequestStatus(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_GetRequestStatus_FullMethodName, err)
	}
	return requestToPB(r), nil
}

func (s *GRPCServer) ListOpenRequests(ctx context.Context, _ *emptypb.Empty) (*pb.RequestList, error) {
	open, err := s.ledger.ListOpenRequests(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_ListOpenRequests_FullMethodName, err)
	}
	out := &pb.RequestList{Requests: make([]*pb.Request, 0, len(open))}
	for _, r := range open {
		out.Requests = append(out.Requests, requestToPB(r))
	}
	return out, nil
}

func (s *GRPCServer) UserDecrypt(ctx context.Context, req *pb.DecryptRequest) (*pb.DecryptResponse, error) {
	caller, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	h, err := parseHandle(req.GetHandle())
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_UserDecrypt_FullMethodName, err)
	}
	v, err := s.ledger.UserDecrypt(ctx, caller, h)
	if err != nil {
		return nil, s.toStatus(ctx, pb.LedgerService_UserDecrypt_FullMethodName, err)
	}
	return &pb.DecryptResponse{Value: v}, nil
}
