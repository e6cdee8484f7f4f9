package trip_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/mem"
)

var Module = fx.Provide(
	ProvideLocalTripStore,
	ProvideTripService,
	ProvideTripController)

func ProvideLocalTripStore() *mem.LocalTripStore {
	return mem.NewLocalTripStore()
}

func ProvideTripService(
	tripRepo repositories.TripRepository,
	localStore *mem.LocalTripStore,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, localStore)
}

func ProvideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
