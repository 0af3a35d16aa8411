package route_fx

import (
	"go.uber.org/fx"
	"lakbay/internal/api/controllers"
	"lakbay/internal/services"
)

var Module = fx.Provide(
	provideMatrixClient, provideRouteService, provideValidationController)

func provideMatrixClient() services.DistanceMatrixService {
	return services.NewMapboxMatrixClient(services.NewInMemoryLegCache())
}

func provideRouteService(matrix services.DistanceMatrixService) services.RouteServiceInterface {
	return services.NewRouteService(matrix)
}

func provideValidationController(
	tripService services.TripServiceInterface,
	routeService services.RouteServiceInterface,
) *controllers.ValidationController {
	return controllers.NewValidationController(tripService, routeService)
}
