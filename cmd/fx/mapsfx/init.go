package mapsfx

import (
	"go.uber.org/fx"

	"tripforge/internal/services"
	"tripforge/pkg/config"
)

var Module = fx.Provide(
	provideMapsService)

func provideMapsService(cfg *config.Config) services.MapsServiceInterface {
	return services.NewGoogleMapsClient(cfg)
}
