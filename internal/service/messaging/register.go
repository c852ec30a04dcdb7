package messaging

import (
	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/app"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Registrar ties the Messaging service into the gRPC server
type Registrar struct {
	appCtx *app.AppContext
	chats  ChatMarker
}

func NewRegistrar(appCtx *app.AppContext, chats ChatMarker) *Registrar {
	return &Registrar{appCtx: appCtx, chats: chats}
}

func (r *Registrar) Register(s *grpc.Server) {
	pb.RegisterMessagingServiceServer(s, NewServer(r.appCtx, NewService(r.appCtx, r.chats)))
}
