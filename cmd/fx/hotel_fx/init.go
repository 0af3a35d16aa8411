package hotel_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"lakbay/internal/api/controllers"
	"lakbay/internal/repositories"
	"lakbay/internal/services"
	"lakbay/pkg/utils"
)

var Module = fx.Provide(
	provideHotelEmbeddingRepo, provideHotelService, provideHotelController)

func provideHotelEmbeddingRepo(db *gorm.DB) repositories.IHotelEmbeddingRepository {
	return repositories.NewHotelEmbeddingRepository(db)
}

func provideHotelService(
	hotelRepo repositories.IHotelEmbeddingRepository,
	aiClient utils.ItineraryClientInterface,
) services.HotelServiceInterface {
	return services.NewHotelService(hotelRepo, aiClient)
}

func provideHotelController(hotelService services.HotelServiceInterface) *controllers.HotelController {
	return controllers.NewHotelController(hotelService)
}
