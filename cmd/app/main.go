package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripforge/cmd/fx/configfx"
	"tripforge/cmd/fx/controllersfx"
	"tripforge/cmd/fx/itineraryfx"
	"tripforge/cmd/fx/mapsfx"
	"tripforge/internal/api/controllers"
	"tripforge/pkg/config"
	"tripforge/pkg/middleware"
)

func main() {
	app := fx.New(
		configfx.Module,
		mapsfx.Module,
		itineraryfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(travelController *controllers.TravelController) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, travelController)

	return r
}

func RegisterRoutes(r *gin.Engine, travelController *controllers.TravelController) {
	api := r.Group("/api")
	api.POST("/travel", travelController.GetDayActivities)
	api.POST("/itinerary", travelController.GetItinerary)
}
