package client

import (
	"context"
	"crypto/ecdsa"
	"time"

	pb "github.com/dmitrijs2005/blindledger/internal/proto"
)

type Client interface {
	Close() error
	AccessToken() string
	SetAccessToken(token string)
	Login(ctx context.Context, key *ecdsa.PrivateKey) (string, time.Time, error)

	GetSettings(ctx context.Context) (*pb.Settings, error)

	CreateMarket(ctx context.Context, req *pb.CreateMarketRequest) (*pb.Market, error)
	Vote(ctx context.Context, req *pb.VoteRequest) error
	RequestTallyReveal(ctx context.Context, marketID string) (uint64, error)
	ClaimPrize(ctx context.Context, marketID string) (string, error)
	ClaimRefund(ctx context.Context, marketID string) (string, error)
	GetMarket(ctx context.Context, marketID string) (*pb.Market, error)
	GetVote(ctx context.Context, lookup *pb.VoteLookup) (*pb.Vote, error)

	GetRequestStatus(ctx context.Context, id uint64) (*pb.Request, error)
	HandleTimeout(ctx context.Context, id uint64) error

	GetProposal(ctx context.Context, id uint64) (*pb.Proposal, error)
	RequestProposalDecryption(ctx context.Context, id uint64) (uint64, error)
	ApproveProposal(ctx context.Context, id uint64) error
	RejectProposal(ctx context.Context, id uint64) error
	EmergencyWithdraw(ctx context.Context, id uint64) error
}
