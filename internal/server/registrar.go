package server

import "google.golang.org/grpc"

// Registrar attaches one campus service (identity, ledger, messaging, dice,
// moderation, presence) to the gRPC server.
type Registrar interface {
	Register(s *grpc.Server)
}
