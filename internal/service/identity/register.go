package identity

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	idp "github.com/oggyb/campus-connect/internal/identity"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Registrar ties the Identity service into the gRPC server
type Registrar struct {
	appCtx  *app.AppContext
	revoker idp.Revoker
}

func NewRegistrar(appCtx *app.AppContext, revoker idp.Revoker) *Registrar {
	return &Registrar{appCtx: appCtx, revoker: revoker}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterIdentityServiceServer(s, NewServer(r.appCtx, NewService(r.appCtx), r.revoker))
}
