//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"pinboard/internal/common"
	"pinboard/internal/content"
	"pinboard/internal/dbmongo"
	"pinboard/internal/dbsql"
	"pinboard/internal/engagement"
	"pinboard/internal/friend"
	"pinboard/internal/metrics"
	"pinboard/internal/search"
	"pinboard/internal/server"
	"pinboard/internal/stream"
	"pinboard/internal/user"
)

var infraSet = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	ProvideDatabase,
	ProvideMongo,
	dbmongo.NewPictureStorage,
	ProvidePictureStore,
	dbsql.NewTransactor,
	metrics.New,
	ProvideRecorder,
	common.NewTokenIssuer,
	common.NewAuthenticator,
	ProvideTokenGenerator,
)

var domainSet = wire.NewSet(
	user.NewUserRepository,
	user.NewUserService,
	user.NewHandler,

	friend.NewFriendRepository,
	friend.NewFriendService,
	friend.NewHandler,
	ProvideFriendChecker,

	content.NewBoardRepository,
	content.NewPictureRepository,
	content.NewPinRepository,
	content.NewContentService,
	ProvideContentHandler,
	ProvidePinResolver,
	ProvideBoardLookup,

	engagement.NewLikeRepository,
	engagement.NewCommentRepository,
	engagement.NewEngagementService,
	engagement.NewHandler,
	ProvideLikeStats,

	stream.NewStreamRepository,
	ProvideStreamService,
	ProvideStreamHandler,

	search.NewSearchRepository,
	ProvideSearchService,
	ProvideSearchHandler,
)

func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		infraSet,
		domainSet,
		ProvideRoutes,
		ProvideRouter,
		server.NewGRPCServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
