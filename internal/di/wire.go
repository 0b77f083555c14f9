//go:build wireinject
// +build wireinject

package di

import (
	"freet/internal/circle"
	"freet/internal/dbmongo"
	"freet/internal/dbmysql"
	"freet/internal/follow"
	"freet/internal/freet"
	"freet/internal/user"

	"github.com/google/wire"
)

func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewReportStorage,
		user.NewUserRepository,
		follow.NewFollowRepository,
		circle.NewCircleRepository,
		freet.NewFreetRepository,
		ProvideEngine,
		ProvideFreetService,
		ProvideCircleService,
		ProvideFollowService,
		ProvideUserService,
		ProvideReportService,
		ProvideUserHandler,
		ProvideFollowHandler,
		ProvideCircleHandler,
		ProvideFreetHandler,
		ProvideReportHandler,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
