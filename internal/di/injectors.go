//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"hubdash/internal"
	"hubdash/internal/controllers"
	"hubdash/internal/monitor"
	"hubdash/internal/providers"
	"hubdash/internal/services"
	"hubdash/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		providers.NewConfigProvider,
		provideLogger,
		services.NewDataStore,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewNotifierProvider,
		providers.NewHTTPMiddlewareProvider,

		controllers.NewHubController,
		controllers.NewCameraController,
		controllers.NewEventController,
		controllers.NewSpeakerController,
		controllers.NewAITriggerController,
		controllers.NewWatchListController,
		controllers.NewHealthController,
		monitor.NewScheduler,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}
