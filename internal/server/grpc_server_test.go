package server_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/identity"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/server"
	"github.com/oggyb/campus-connect/internal/service/moderation"
	"github.com/oggyb/campus-connect/internal/service/presence"
	"github.com/oggyb/campus-connect/internal/testutil"
)

func startServer(t *testing.T) (*testutil.Env, *grpc.ClientConn) {
	t.Helper()
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	env.App.Config.Auth.JWTSecret = "test-secret"
	env.App.Config.Auth.JWTIssuer = ""
	env.App.Config.Auth.OperatorToken = "op-token"

	ext := "ext-a"
	require.NoError(t, env.DB.Create(&db.Profile{ID: "a", ExternalID: &ext, Email: "a@institution.domain"}).Error)

	srv := server.NewGRPCServer(env.App,
		presence.NewRegistrar(env.App),
		moderation.NewRegistrar(env.App, identity.NoopRevoker{}),
	)
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return env, conn
}

func bearer(t *testing.T, env *testutil.Env, subject, email string) context.Context {
	t.Helper()
	token, err := auth.NewVerifier(env.App.Config).Sign(subject, email, "", time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)
}

func TestGRPC_AuthenticatedCall(t *testing.T) {
	env, conn := startServer(t)

	resp, err := pb.NewPresenceServiceClient(conn).Heartbeat(bearer(t, env, "ext-a", "a@institution.domain"), &pb.HeartbeatRequest{})
	require.NoError(t, err)
	assert.Equal(t, env.Clock.Now().Add(5*time.Minute).Unix(), resp.GetOnlineUntilUnix())
}

func TestGRPC_RejectsMissingOrUnlinkedToken(t *testing.T) {
	env, conn := startServer(t)
	client := pb.NewPresenceServiceClient(conn)

	_, err := client.Heartbeat(context.Background(), &pb.HeartbeatRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Heartbeat(bearer(t, env, "ext-unknown", "x@institution.domain"), &pb.HeartbeatRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGRPC_ModerationNeedsOperatorToken(t *testing.T) {
	_, conn := startServer(t)
	client := pb.NewModerationServiceClient(conn)
	req := &pb.WarnRequest{UserId: "a", Reason: "spam"}

	_, err := client.Warn(context.Background(), req)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-operator-token", "op-token")
	resp, err := client.Warn(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.GetWarningCount())
}

func TestGRPC_HealthReportsServices(t *testing.T) {
	_, conn := startServer(t)
	client := healthpb.NewHealthClient(conn)

	services := []string{"", pb.PresenceService_ServiceDesc.ServiceName, pb.ModerationService_ServiceDesc.ServiceName}
	for _, service := range services {
		resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
		require.NoError(t, err, service)
		assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus(), service)
	}
}
