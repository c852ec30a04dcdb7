package ledger

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Registrar ties the Ledger service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
}

// NewRegistrar creates a new Registrar for the Ledger service
func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

// Register attaches the Ledger service implementation to the gRPC server
func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterLedgerServiceServer(s, NewServer(r.appCtx, NewService(r.appCtx)))
}
