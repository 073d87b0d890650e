package server

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"pinboard/internal/common"
	"pinboard/internal/config"
)

func startGRPC(t *testing.T) (*GRPCServer, *grpc.ClientConn, *common.TokenIssuer) {
	t.Helper()
	issuer := common.NewTokenIssuer(&config.Config{Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1}})
	srv := NewGRPCServer(issuer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return srv, conn, issuer
}

func TestGRPCServer_Health(t *testing.T) {
	srv, conn, _ := startGRPC(t)
	client := healthpb.NewHealthClient(conn)
	ctx := context.Background()

	// health probes need no token
	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	srv.MarkServing()
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestGRPCServer_WhoAmI(t *testing.T) {
	_, conn, issuer := startGRPC(t)

	token, err := issuer.GenerateToken(7, "ana")
	require.NoError(t, err)

	tests := []struct {
		name     string
		md       metadata.MD
		wantCode codes.Code
	}{
		{name: "no metadata", md: nil, wantCode: codes.Unauthenticated},
		{name: "bad scheme", md: metadata.Pairs("authorization", "Basic abc"), wantCode: codes.Unauthenticated},
		{name: "forged token", md: metadata.Pairs("authorization", "Bearer not-a-jwt"), wantCode: codes.Unauthenticated},
		{name: "valid token", md: metadata.Pairs("authorization", "Bearer "+token), wantCode: codes.OK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			if tc.md != nil {
				ctx = metadata.NewOutgoingContext(ctx, tc.md)
			}

			out := new(structpb.Struct)
			err := conn.Invoke(ctx, WhoAmIMethod, &emptypb.Empty{}, out)
			require.Equal(t, tc.wantCode, status.Code(err), "err: %v", err)
			if tc.wantCode != codes.OK {
				return
			}
			assert.Equal(t, float64(7), out.GetFields()["user_id"].GetNumberValue())
			assert.Equal(t, "ana", out.GetFields()["username"].GetStringValue())
		})
	}
}
