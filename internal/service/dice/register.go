package dice

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Registrar ties the Dice service into the gRPC server. The Service is
// shared with the sweeper and the messaging channel.
type Registrar struct {
	appCtx *app.AppContext
	svc    *Service
}

func NewRegistrar(appCtx *app.AppContext, svc *Service) *Registrar {
	return &Registrar{appCtx: appCtx, svc: svc}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterDiceServiceServer(s, NewServer(r.appCtx, r.svc))
}
