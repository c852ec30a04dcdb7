package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
)

// shutdownGrace bounds GracefulStop; open Subscribe streams would hold it
// forever otherwise.
const shutdownGrace = 10 * time.Second

// GRPCServer is the campus gRPC endpoint with health reporting attached.
type GRPCServer struct {
	srv    *grpc.Server
	health *health.Server
	log    *slog.Logger
}

// NewGRPCServer builds a server with the interceptor chain (recover, observe,
// authenticate) and registers all provided services.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *GRPCServer {
	authn := auth.NewInterceptor(appCtx)
	log := appCtx.Logger

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(recoverUnary(log), observeUnary(log), authn.Unary()),
		grpc.ChainStreamInterceptor(recoverStream(log), observeStream(log), authn.Stream()),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	hs := health.NewServer()
	for name := range grpcServer.GetServiceInfo() {
		hs.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(grpcServer, hs)

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return &GRPCServer{srv: grpcServer, health: hs, log: log}
}

// ListenAndServe listens on addr and serves until ctx is done.
func (g *GRPCServer) ListenAndServe(ctx context.Context, addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return g.Serve(ctx, lis)
}

// Serve accepts connections on lis. When ctx is done health flips to
// NOT_SERVING and in-flight RPCs drain before it returns.
func (g *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() { errCh <- g.srv.Serve(lis) }()

	g.log.Info("gRPC server listening", "addr", lis.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		g.log.Info("gRPC server shutting down")
		g.health.Shutdown()
		stopped := make(chan struct{})
		go func() {
			g.srv.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(shutdownGrace):
			g.log.Warn("graceful stop timed out, closing connections")
			g.srv.Stop()
		}
		return nil
	}
}
