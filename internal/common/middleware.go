package common

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"pinboard/internal/apperr"
)

var publicMethods = map[string]bool{
	"/grpc.health.v1.Health/Check": true,
	"/grpc.health.v1.Health/Watch": true,
	"/grpc.health.v1.Health/List":  true,
}

// AuthInterceptor validates the bearer token carried in the "authorization"
// metadata and injects the caller into the context. Health probes bypass it.
func AuthInterceptor(issuer *TokenIssuer) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		vals := md["authorization"]
		if len(vals) == 0 {
			return nil, status.Error(codes.Unauthenticated, "authorization required")
		}

		token, ok := bearerToken(vals[0])
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "invalid auth header")
		}

		claims, err := issuer.ValidToken(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
		}

		return handler(WithUser(ctx, claims.UserID, claims.Username), req)
	}
}

// LoggingUnaryInterceptor logs every unary call and converts classified
// service errors into gRPC statuses.
func LoggingUnaryInterceptor(log *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		err = apperr.ToStatus(err)

		log.InfoContext(ctx, "grpc call",
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration", time.Since(start),
		)
		return resp, err
	}
}

// Authenticator is the HTTP counterpart of AuthInterceptor.
type Authenticator struct {
	issuer *TokenIssuer
}

func NewAuthenticator(issuer *TokenIssuer) *Authenticator {
	return &Authenticator{issuer: issuer}
}

// Require rejects requests without a valid bearer token.
func (a *Authenticator) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := a.authenticate(r)
		if err != nil {
			WriteError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the actor when a valid token is present and lets
// anonymous requests through untouched.
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, err := a.authenticate(r); err == nil {
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func (a *Authenticator) RequireFunc(fn http.HandlerFunc) http.Handler {
	return a.Require(fn)
}

func (a *Authenticator) OptionalFunc(fn http.HandlerFunc) http.Handler {
	return a.Optional(fn)
}

func (a *Authenticator) authenticate(r *http.Request) (context.Context, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, apperr.New(apperr.KindUnauthenticated, "authorization required")
	}
	token, ok := bearerToken(header)
	if !ok {
		return nil, apperr.New(apperr.KindUnauthenticated, "invalid auth header")
	}
	claims, err := a.issuer.ValidToken(token)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnauthenticated, err, "invalid or expired token")
	}
	return WithUser(r.Context(), claims.UserID, claims.Username), nil
}

// bearerToken splits "Bearer <token>".
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
