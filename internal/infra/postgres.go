package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// InitPostgresql connects using POSTGRES_URL. The variable is optional: with
// no database the service still plans trips, it just cannot persist them
// beyond the in-process store. A set but unreachable URL is fatal.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set, running without persistence")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.TripRecord{},
		&db_models.WishlistEmbedding{},
	); err != nil {
		log.Printf("Error running migrations: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
