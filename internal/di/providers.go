package di

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"pinboard/internal/common"
	"pinboard/internal/config"
	"pinboard/internal/content"
	"pinboard/internal/dbmongo"
	"pinboard/internal/dbsql"
	"pinboard/internal/engagement"
	"pinboard/internal/friend"
	"pinboard/internal/logging"
	"pinboard/internal/metrics"
	"pinboard/internal/search"
	"pinboard/internal/server"
	"pinboard/internal/stream"
	"pinboard/internal/user"
)

// Application is everything cmd/pinboard-svc needs to serve.
type Application struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
	Mongo  *dbmongo.MongoClient
	Router http.Handler
	GRPC   *server.GRPCServer
}

func ProvideConfig() (*config.Config, error) {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvideLogger also installs the logger as the slog default.
func ProvideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	log, closer, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log)
	return log, func() { _ = closer.Close() }, nil
}

func ProvideDatabase(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := dbsql.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := dbsql.Close(db); err != nil {
			log.Warn("failed to close database", "error", err)
		}
	}
	return db, cleanup, nil
}

func ProvideMongo(cfg *config.Config, log *slog.Logger) (*dbmongo.MongoClient, func(), error) {
	client, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Info("connected to mongodb", "database", cfg.MongoDB.Database, "bucket", cfg.MongoDB.Bucket)
	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Close(ctx); err != nil {
			log.Warn("failed to disconnect mongodb", "error", err)
		}
	}
	return client, cleanup, nil
}

func ProvidePictureStore(storage *dbmongo.PictureStorage) content.PictureStore {
	return storage
}

func ProvideRecorder(m *metrics.Metrics) metrics.Recorder {
	return m
}

func ProvideTokenGenerator(issuer *common.TokenIssuer) user.TokenGenerator {
	return issuer
}

func ProvidePinResolver(svc content.ContentService) engagement.PinResolver {
	return svc
}

func ProvideFriendChecker(svc friend.FriendService) engagement.FriendChecker {
	return svc
}

func ProvideLikeStats(svc engagement.EngagementService) content.LikeStats {
	return svc
}

func ProvideBoardLookup(svc content.ContentService) stream.BoardLookup {
	return svc
}

func ProvideContentHandler(cfg *config.Config, svc content.ContentService, likes content.LikeStats, auth *common.Authenticator) *content.Handler {
	return content.NewHandler(svc, likes, auth, cfg.Upload.MaxBytes)
}

func ProvideStreamService(cfg *config.Config, streams stream.StreamRepository, boards stream.BoardLookup, events metrics.Recorder) stream.StreamService {
	return stream.NewStreamService(streams, boards, cfg.Search.DefaultLimit, cfg.Search.MaxLimit, events)
}

func ProvideStreamHandler(svc stream.StreamService, pictures content.ContentService, auth *common.Authenticator) *stream.Handler {
	return stream.NewHandler(svc, pictures, auth)
}

func ProvideSearchService(cfg *config.Config, repo search.SearchRepository) search.SearchService {
	return search.NewSearchService(repo, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)
}

func ProvideSearchHandler(svc search.SearchService, pictures content.ContentService) *search.Handler {
	return search.NewHandler(svc, pictures)
}

func ProvideRoutes(
	users *user.Handler,
	friends *friend.Handler,
	contents *content.Handler,
	engagements *engagement.Handler,
	streams *stream.Handler,
	searches *search.Handler,
) server.Routes {
	return server.Routes{users, friends, contents, engagements, streams, searches}
}

func ProvideRouter(log *slog.Logger, m *metrics.Metrics, db *gorm.DB, mongo *dbmongo.MongoClient, routes server.Routes) http.Handler {
	return server.NewRouter(server.RouterDeps{
		Log:     log,
		Metrics: m,
		Checks: map[string]server.HealthCheck{
			"database": func(ctx context.Context) error { return dbsql.Ping(ctx, db) },
			"mongodb":  mongo.Ping,
		},
		Routes: routes,
	})
}
