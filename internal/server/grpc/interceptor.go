package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/blindledger/internal/common"
	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const CallerKey ctxKey = "caller"

// publicMethods need no token: login, oracle fulfillment, the timeout
// trigger and read-only queries.
var publicMethods = map[string]bool{
	pb.LedgerService_Challenge_FullMethodName:        true,
	pb.LedgerService_Login_FullMethodName:            true,
	pb.LedgerService_Fulfill_FullMethodName:          true,
	pb.LedgerService_HandleTimeout_FullMethodName:    true,
	pb.LedgerService_GetRequestStatus_FullMethodName: true,
	pb.LedgerService_ListOpenRequests_FullMethodName: true,
	pb.LedgerService_GetTeam_FullMethodName:          true,
	pb.LedgerService_GetAthlete_FullMethodName:       true,
	pb.LedgerService_ListAthletes_FullMethodName:     true,
	pb.LedgerService_GetProposal_FullMethodName:      true,
	pb.LedgerService_GetMarket_FullMethodName:        true,
	pb.LedgerService_GetVote_FullMethodName:          true,
	pb.LedgerService_GetSettings_FullMethodName:      true,
}

// CallerFromContext returns the authenticated address, if any.
func CallerFromContext(ctx context.Context) (ethcommon.Address, bool) {
	addr, ok := ctx.Value(CallerKey).(ethcommon.Address)
	return addr, ok
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}

	public := publicMethods[info.FullMethod]
	if len(accessToken) == 0 {
		if public {
			return handler(ctx, req)
		}
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	addr, err := auth.AddressFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if public {
			return handler(ctx, req)
		}
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	ctx = context.WithValue(ctx, CallerKey, addr)
	return handler(ctx, req)
}
