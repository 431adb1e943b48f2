// Package client talks to the blindledger server.
//
// GRPCClient wraps the generated-style api stub: it performs the
// challenge-response login with a secp256k1 key, attaches the issued access
// token to every call through a unary interceptor, and maps gRPC statuses
// back to the ledger error kinds in internal/common, so callers can match
// them with errors.Is. Transport failures surface as ErrUnavailable and
// rejected credentials as ErrUnauthorized or common.ErrTokenExpired.
package client
