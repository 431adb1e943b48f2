package grpc

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/common"
	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// helper to build server
func newTestServer(secret string) *GRPCServer {
	return &GRPCServer{
		logger:    nopLogger{},
		jwtSecret: []byte(secret),
	}
}

func withToken(token string) context.Context {
	md := metadata.New(map[string]string{common.AccessTokenHeaderName: token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestInterceptor_PublicMethod_AllowsWithoutToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.LedgerService_GetMarket_FullMethodName}
	handlerCalled := false

	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		handlerCalled = true
		_, ok := CallerFromContext(ctx)
		assert.False(t, ok)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	require.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_PublicMethod_IgnoresBadToken(t *testing.T) {
	s := newTestServer("secret")

	info := &grpc.UnaryServerInfo{FullMethod: pb.LedgerService_HandleTimeout_FullMethodName}
	h := func(ctx context.Context, req interface{}) (interface{}, error) { return "ok", nil }

	resp, err := s.accessTokenInterceptor(withToken("garbage"), nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestInterceptor_ProtectedMethod_Rejections(t *testing.T) {
	secret := "secret"
	addr := ethcommon.HexToAddress("0x00000000000000000000000000000000000000aa")

	expired, _, err := auth.GenerateToken(addr, []byte(secret), -time.Minute)
	require.NoError(t, err)
	foreign, _, err := auth.GenerateToken(addr, []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		ctx     context.Context
		wantMsg string
	}{
		{"missing token", context.Background(), "missing token"},
		{"malformed token", withToken("not-a-valid-jwt"), common.ErrInvalidToken.Error()},
		{"foreign signature", withToken(foreign), common.ErrInvalidToken.Error()},
		{"expired token", withToken(expired), common.ErrTokenExpired.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(secret)
			info := &grpc.UnaryServerInfo{FullMethod: pb.LedgerService_Vote_FullMethodName}
			h := func(ctx context.Context, req interface{}) (interface{}, error) {
				t.Fatal("handler should not be called")
				return nil, nil
			}

			_, err := s.accessTokenInterceptor(tt.ctx, nil, info, h)
			require.Error(t, err)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
			assert.Equal(t, tt.wantMsg, status.Convert(err).Message())
		})
	}
}

func TestInterceptor_ValidToken_SetsCaller(t *testing.T) {
	secret := "super-secret"
	s := newTestServer(secret)

	addr := ethcommon.HexToAddress("0x00000000000000000000000000000000000000bb")
	token, _, err := auth.GenerateToken(addr, []byte(secret), time.Hour)
	require.NoError(t, err)

	info := &grpc.UnaryServerInfo{FullMethod: pb.LedgerService_ClaimPrize_FullMethodName}

	var got ethcommon.Address
	h := func(ctx context.Context, req interface{}) (interface{}, error) {
		got, _ = CallerFromContext(ctx)
		return "ok", nil
	}

	resp, err := s.accessTokenInterceptor(withToken(token), nil, info, h)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, addr, got)
}

func TestPublicMethods_AreKnown(t *testing.T) {
	known := make(map[string]bool, len(pb.LedgerService_ServiceDesc.Methods))
	for _, m := range pb.LedgerService_ServiceDesc.Methods {
		known["/"+pb.LedgerService_ServiceDesc.ServiceName+"/"+m.MethodName] = true
	}
	for m := range publicMethods {
		assert.True(t, known[m], "public method %s is not served", m)
	}
}
