package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"sync"
	"time"

	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/common"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	"github.com/ethereum/go-ethereum/crypto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.LedgerServiceClient

	mu          sync.RWMutex
	accessToken string
}

var _ Client = (*GRPCClient)(nil)

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token, if any, to every
// outgoing call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.AccessToken(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to the ledger at endpointURL. Extra dial options are
// appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewLedgerServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = token
}

// Login proves control of key to the server and keeps the issued token for
// later calls.
func (s *GRPCClient) Login(ctx context.Context, key *ecdsa.PrivateKey) (string, time.Time, error) {
	addr := crypto.PubkeyToAddress(key.PublicKey)

	ch, err := s.client.Challenge(ctx, &pb.ChallengeRequest{Address: addr.Hex()})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}

	keyBytes := crypto.FromECDSA(key)
	defer common.WipeByteArray(keyBytes)

	sig, err := auth.SignChallenge(ch.Message, keyBytes)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign challenge: %w", err)
	}

	resp, err := s.client.Login(ctx, &pb.LoginRequest{Address: addr.Hex(), Signature: sig})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}

	s.SetAccessToken(resp.AccessToken)
	return resp.AccessToken, resp.GetExpiresAt().AsTime(), nil
}

func (s *GRPCClient) GetSettings(ctx context.Context) (*pb.Settings, error) {
	resp, err := s.client.GetSettings(ctx, &emptypb.Empty{})
	return resp, s.mapError(err)
}

func (s *GRPCClient) CreateMarket(ctx context.Context, req *pb.CreateMarketRequest) (*pb.Market, error) {
	resp, err := s.client.CreateMarket(ctx, req)
	return resp, s.mapError(err)
}

func (s *GRPCClient) Vote(ctx context.Context, req *pb.VoteRequest) error {
	_, err := s.client.Vote(ctx, req)
	return s.mapError(err)
}

func (s *GRPCClient) RequestTallyReveal(ctx context.Context, marketID string) (uint64, error) {
	resp, err := s.client.RequestTallyReveal(ctx, &pb.MarketRequest{MarketId: marketID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Id, nil
}

func (s *GRPCClient) ClaimPrize(ctx context.Context, marketID string) (string, error) {
	resp, err := s.client.ClaimPrize(ctx, &pb.MarketRequest{MarketId: marketID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Amount, nil
}

func (s *GRPCClient) ClaimRefund(ctx context.Context, marketID string) (string, error) {
	resp, err := s.client.ClaimRefund(ctx, &pb.MarketRequest{MarketId: marketID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Amount, nil
}

func (s *GRPCClient) GetMarket(ctx context.Context, marketID string) (*pb.Market, error) {
	resp, err := s.client.GetMarket(ctx, &pb.MarketRequest{MarketId: marketID})
	return resp, s.mapError(err)
}

func (s *GRPCClient) GetVote(ctx context.Context, lookup *pb.VoteLookup) (*pb.Vote, error) {
	resp, err := s.client.GetVote(ctx, lookup)
	return resp, s.mapError(err)
}

func (s *GRPCClient) GetRequestStatus(ctx context.Context, id uint64) (*pb.Request, error) {
	resp, err := s.client.GetRequestStatus(ctx, &pb.IDRequest{Id: id})
	return resp, s.mapError(err)
}

func (s *GRPCClient) HandleTimeout(ctx context.Context, id uint64) error {
	_, err := s.client.HandleTimeout(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) GetProposal(ctx context.Context, id uint64) (*pb.Proposal, error) {
	resp, err := s.client.GetProposal(ctx, &pb.IDRequest{Id: id})
	return resp, s.mapError(err)
}

func (s *GRPCClient) RequestProposalDecryption(ctx context.Context, id uint64) (uint64, error) {
	resp, err := s.client.RequestProposalDecryption(ctx, &pb.IDRequest{Id: id})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Id, nil
}

func (s *GRPCClient) ApproveProposal(ctx context.Context, id uint64) error {
	_, err := s.client.ApproveProposal(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) RejectProposal(ctx context.Context, id uint64) error {
	_, err := s.client.RejectProposal(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

func (s *GRPCClient) EmergencyWithdraw(ctx context.Context, id uint64) error {
	_, err := s.client.EmergencyWithdraw(ctx, &pb.IDRequest{Id: id})
	return s.mapError(err)
}

// mapError turns a gRPC status back into the ledger error kind it carries.
// Statuses without a known kind fall back to the transport sentinels.
func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	if kind, ok := common.KindByMessage(st.Message()); ok {
		return kind
	}
	switch st.Code() {
	case codes.Unauthenticated:
		if st.Message() == common.ErrTokenExpired.Error() {
			return common.ErrTokenExpired
		}
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
