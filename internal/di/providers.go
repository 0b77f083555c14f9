package di

import (
	"freet/internal/circle"
	"freet/internal/config"
	"freet/internal/dbmongo"
	"freet/internal/follow"
	"freet/internal/freet"
	"freet/internal/report"
	"freet/internal/user"
	"freet/internal/visibility"

	"gorm.io/gorm"
)

// Application is the fully wired service graph.
type Application struct {
	Config        *config.Config
	DB            *gorm.DB
	Mongo         *dbmongo.MongoClient
	UserHandler   *user.Handler
	FollowHandler *follow.Handler
	CircleHandler *circle.Handler
	FreetHandler  *freet.Handler
	ReportHandler *report.Handler
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideEngine(circles circle.CircleRepository, follows follow.FollowRepository, content *freet.FreetRepository) *visibility.Engine {
	return visibility.NewEngine(circles, follows, content)
}

// The freet repository backs both the content and like capabilities.
func ProvideFreetService(repo *freet.FreetRepository, circles circle.CircleRepository, reports *dbmongo.ReportStorage, engine *visibility.Engine) freet.FreetService {
	return freet.NewFreetService(repo, repo, circles, reports, engine)
}

func ProvideCircleService(repo circle.CircleRepository, content *freet.FreetRepository) circle.CircleService {
	return circle.NewCircleService(repo, content)
}

func ProvideFollowService(repo follow.FollowRepository, circles circle.CircleService) follow.FollowService {
	return follow.NewFollowService(repo, circles)
}

func ProvideUserService(repo user.UserRepository, circles circle.CircleService, content freet.FreetService, follows follow.FollowService) user.UserService {
	return user.NewUserService(repo, circles, content, follows)
}

func ProvideReportService(store *dbmongo.ReportStorage, content freet.FreetService) report.ReportService {
	return report.NewReportService(store, content)
}

func ProvideUserHandler(users user.UserService) *user.Handler {
	return user.NewHandler(users)
}

func ProvideFollowHandler(follows follow.FollowService, users user.UserService) *follow.Handler {
	return follow.NewHandler(follows, users)
}

func ProvideCircleHandler(circles circle.CircleService, users user.UserService) *circle.Handler {
	return circle.NewHandler(circles, users)
}

func ProvideFreetHandler(freets freet.FreetService, engine *visibility.Engine, users user.UserService) *freet.Handler {
	return freet.NewHandler(freets, engine, users)
}

func ProvideReportHandler(reports report.ReportService) *report.Handler {
	return report.NewHandler(reports)
}
