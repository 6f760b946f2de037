package internal

import (
	"net/http"

	"hubdash/internal/controllers"
	"hubdash/internal/providers"
)

func InitRoutes(
	hubs *controllers.HubController,
	cameras *controllers.CameraController,
	events *controllers.EventController,
	speakers *controllers.SpeakerController,
	triggers *controllers.AITriggerController,
	watchList *controllers.WatchListController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/api/hubs", http.HandlerFunc(hubs.List))
	routers.Post("/api/hubs", http.HandlerFunc(hubs.Create))
	routers.Get("/api/hubs/{id}", http.HandlerFunc(hubs.Get))
	routers.Patch("/api/hubs/{id}", http.HandlerFunc(hubs.Update))
	routers.Delete("/api/hubs/{id}", http.HandlerFunc(hubs.Delete))
	routers.Post("/api/hubs/{id}/arm", http.HandlerFunc(hubs.Arm))
	routers.Post("/api/hubs/{id}/disarm", http.HandlerFunc(hubs.Disarm))
	routers.Post("/api/hubs/{id}/heartbeat", http.HandlerFunc(hubs.Heartbeat))

	routers.Get("/api/cameras", http.HandlerFunc(cameras.List))
	routers.Post("/api/cameras", http.HandlerFunc(cameras.Create))
	routers.Get("/api/cameras/{id}", http.HandlerFunc(cameras.Get))
	routers.Patch("/api/cameras/{id}", http.HandlerFunc(cameras.Update))
	routers.Delete("/api/cameras/{id}", http.HandlerFunc(cameras.Delete))

	routers.Get("/api/events", http.HandlerFunc(events.List))
	routers.Post("/api/events", http.HandlerFunc(events.Create))
	routers.Get("/api/events/{id}", http.HandlerFunc(events.Get))
	routers.Patch("/api/events/{id}/acknowledge", http.HandlerFunc(events.Acknowledge))
	routers.Delete("/api/events/{id}", http.HandlerFunc(events.Delete))

	routers.Get("/api/speakers", http.HandlerFunc(speakers.List))
	routers.Post("/api/speakers", http.HandlerFunc(speakers.Create))
	routers.Get("/api/speakers/{id}", http.HandlerFunc(speakers.Get))
	routers.Patch("/api/speakers/{id}", http.HandlerFunc(speakers.Update))
	routers.Delete("/api/speakers/{id}", http.HandlerFunc(speakers.Delete))

	routers.Get("/api/ai-triggers", http.HandlerFunc(triggers.List))
	routers.Post("/api/ai-triggers", http.HandlerFunc(triggers.Create))
	routers.Get("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Get))
	routers.Patch("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Update))
	routers.Delete("/api/ai-triggers/{id}", http.HandlerFunc(triggers.Delete))

	routers.Get("/api/watchlist", http.HandlerFunc(watchList.List))
	routers.Post("/api/watchlist", http.HandlerFunc(watchList.Create))
	routers.Post("/api/watchlist/check", http.HandlerFunc(watchList.Check))
	routers.Get("/api/watchlist/{id}", http.HandlerFunc(watchList.Get))
	routers.Put("/api/watchlist/{id}", http.HandlerFunc(watchList.Update))
	routers.Patch("/api/watchlist/{id}", http.HandlerFunc(watchList.Update))
	routers.Delete("/api/watchlist/{id}", http.HandlerFunc(watchList.Delete))

	return routers
}
