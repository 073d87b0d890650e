package server

import (
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"pinboard/internal/common"
)

// ServiceName is the name health probes ask about.
const ServiceName = "pinboard.v1.Pinboard"

// GRPCServer carries the identity and health services behind the auth and
// logging interceptors.
type GRPCServer struct {
	*grpc.Server
	health *health.Server
}

// NewGRPCServer reports NOT_SERVING until MarkServing is called.
func NewGRPCServer(issuer *common.TokenIssuer, log *slog.Logger) *GRPCServer {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			common.LoggingUnaryInterceptor(log.With("component", "grpc")),
			common.AuthInterceptor(issuer),
		),
	)

	srv.RegisterService(&identityServiceDesc, identityServer{})

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	reflection.Register(srv)
	return &GRPCServer{Server: srv, health: hs}
}

func (s *GRPCServer) MarkServing() {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips health to NOT_SERVING before draining in-flight calls.
func (s *GRPCServer) Shutdown() {
	s.health.Shutdown()
	s.GracefulStop()
}
