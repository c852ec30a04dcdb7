package moderation

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/identity"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

type Registrar struct {
	appCtx  *app.AppContext
	revoker identity.Revoker
}

func NewRegistrar(appCtx *app.AppContext, revoker identity.Revoker) *Registrar {
	return &Registrar{appCtx: appCtx, revoker: revoker}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterModerationServiceServer(s, NewServer(r.appCtx, NewService(r.appCtx, r.revoker)))
}
