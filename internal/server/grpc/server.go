package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/blindledger/internal/logging"
	pb "github.com/dmitrijs2005/blindledger/internal/proto"
	"github.com/dmitrijs2005/blindledger/internal/server/auth"
	"github.com/dmitrijs2005/blindledger/internal/server/ledger"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedLedgerServiceServer

	address    string
	ledger     *ledger.Ledger
	challenger *auth.Challenger
	logger     logging.Logger
	jwtSecret  []byte
	tokenTTL   time.Duration
}

func NewGRPCServer(a string, l logging.Logger, lg *ledger.Ledger, ch *auth.Challenger, secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		ledger:     lg,
		challenger: ch,
		jwtSecret:  []byte(secretKey),
		tokenTTL:   tokenTTL,
	}
}

// newServer builds the grpc.Server with the ledger service registered.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))
	pb.RegisterLedgerServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
