package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/internal/infra"
	"voyago/internal/repositories"
)

var Module = fx.Provide(
	provideDB,
	provideTripRepository,
	provideAccountRepository,
	provideWishlistRepository)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

// Repositories come back nil when no database is configured; services treat a
// nil repository as "storage unavailable" and fall back where they can.
func provideTripRepository(db *gorm.DB) repositories.TripRepository {
	if db == nil {
		return nil
	}
	return repositories.NewTripRepository(db)
}

func provideAccountRepository(db *gorm.DB) repositories.AccountRepository {
	if db == nil {
		return nil
	}
	return repositories.NewAccountRepository(db)
}

func provideWishlistRepository(db *gorm.DB) repositories.WishlistRepository {
	if db == nil {
		return nil
	}
	return repositories.NewWishlistRepository(db)
}
