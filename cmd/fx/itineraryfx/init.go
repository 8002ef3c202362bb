package itineraryfx

import (
	"go.uber.org/fx"

	"tripforge/internal/services"
	"tripforge/pkg/config"
)

var Module = fx.Provide(
	provideFallbackService, provideItineraryService)

func provideFallbackService() services.FallbackServiceInterface {
	return services.NewFallbackService()
}

func provideItineraryService(
	maps services.MapsServiceInterface,
	fallback services.FallbackServiceInterface,
	cfg *config.Config) services.ItineraryServiceInterface {
	return services.NewItineraryService(maps, fallback, cfg)
}
