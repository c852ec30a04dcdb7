package presence

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

type Registrar struct {
	appCtx *app.AppContext
}

func NewRegistrar(appCtx *app.AppContext) *Registrar {
	return &Registrar{appCtx: appCtx}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterPresenceServiceServer(s, NewServer(r.appCtx, NewService(r.appCtx)))
}
