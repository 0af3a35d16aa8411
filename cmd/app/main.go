package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"lakbay/cmd/fx/account_fx"
	"lakbay/cmd/fx/ai_fx"
	"lakbay/cmd/fx/db_fx"
	"lakbay/cmd/fx/hotel_fx"
	"lakbay/cmd/fx/memcache_fx"
	"lakbay/cmd/fx/route_fx"
	"lakbay/cmd/fx/trip_fx"
	"lakbay/internal/api/controllers"
	"lakbay/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		trip_fx.Module,
		hotel_fx.Module,
		route_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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

func ProvideRouter(
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	hotelController *controllers.HotelController,
	validationController *controllers.ValidationController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, tripController, hotelController, validationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	tripController *controllers.TripController,
	hotelController *controllers.HotelController,
	validationController *controllers.ValidationController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	generationLimiter := middleware.NewRateLimiter(10, 3)

	tripGroup := r.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", generationLimiter.Limit(), tripController.GenerateTrip)
	tripGroup.GET("", tripController.ListTrips)
	tripGroup.GET("/:id", tripController.GetTrip)
	tripGroup.POST("/:id/revalidate", tripController.RevalidateTrip)
	tripGroup.DELETE("/:id", tripController.DeleteTrip)

	hotelGroup := r.Group("/hotels")
	hotelGroup.GET("/search", hotelController.SearchHotels)
	hotelGroup.POST("", middleware.JWTAuthMiddleware(), hotelController.IndexHotel)

	validationGroup := r.Group("/validation")
	validationGroup.POST("/itinerary", validationController.ValidateItinerary)
	validationGroup.POST("/sanitize", validationController.SanitizeText)
	validationGroup.POST("/route", validationController.AssessRoute)
}
