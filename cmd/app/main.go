package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/planner_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/cmd/fx/wishlist_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		trip_fx.Module,
		wishlist_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	wishlistController *controllers.WishlistController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, wishlistController, tripController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	wishlistController *controllers.WishlistController,
	tripController *controllers.TripController,
	accountController *controllers.AccountController) {

	plansGroup := r.Group("/plans")
	plansGroup.POST("/generate", plannerController.GenerateHandler)
	plansGroup.POST("/refine", plannerController.RefineHandler)
	plansGroup.POST("/reschedule", plannerController.RescheduleHandler)
	plansGroup.POST("/chat", plannerController.ChatHandler)

	wishlistGroup := r.Group("/wishlist")
	wishlistGroup.POST("/analyze", wishlistController.AnalyzeHandler)
	wishlistGroup.GET("/similar", wishlistController.SimilarHandler)

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.JWTAuthMiddleware())
	tripsGroup.POST("", tripController.SaveHandler)
	tripsGroup.GET("", tripController.ListHandler)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)
}
