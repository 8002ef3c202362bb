package controllersfx

import (
	"go.uber.org/fx"

	"tripforge/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTravelController))
