package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lakbay/internal/api/controllers"
	"lakbay/internal/repositories"
	"lakbay/internal/services"
	mem "lakbay/pkg/memcache"
	"lakbay/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo, provideTripService, provideTripController)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	aiClient utils.ItineraryClientInterface,
	limiter mem.SubmissionLimiter,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, aiClient, limiter)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
