package grpc

import (
	"context"

	"github.com/dmitrijs2005/blindledger/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf maps a ledger error kind to its gRPC status code. The status
// message is always the kind's text so clients can map it back.
func codeOf(kind error) codes.Code {
	switch kind {
	case common.ErrUnauthorized:
		return codes.PermissionDenied
	case common.ErrNotFound:
		return codes.NotFound
	case common.ErrInactive, common.ErrAlreadyFinalized, common.ErrExpired, common.ErrNotWinner:
		return codes.FailedPrecondition
	case common.ErrInvalidInput, common.ErrInvalidProof, common.ErrMalformedPayload:
		return codes.InvalidArgument
	case common.ErrAlreadyRequested, common.ErrAlreadyVoted, common.ErrAlreadyClaimed:
		return codes.AlreadyExists
	case common.ErrNotExpired, common.ErrNotRevealed:
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	kind := common.KindOf(err)
	if kind == nil {
		s.logger.Error(ctx, "request failed", "method", method, "error", err)
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
	s.logger.Debug(ctx, "request rejected", "method", method, "error", err)
	return status.Error(codeOf(kind), kind.Error())
}
