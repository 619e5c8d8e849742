package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nithinvarma/agrimarket-backend/internal/database"
	"github.com/nithinvarma/agrimarket-backend/internal/handlers"
	"github.com/nithinvarma/agrimarket-backend/internal/middleware"
	"github.com/nithinvarma/agrimarket-backend/internal/services"
	"github.com/nithinvarma/agrimarket-backend/internal/store"
	"github.com/nithinvarma/agrimarket-backend/internal/validation"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	// One logical connection to the database file; SQLite handles its own
	// locking for any concurrent readers.
	sqlDB.SetMaxOpenConns(1)

	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	validation.RegisterBindings()

	st := store.New(db)

	hub := services.NewHub()
	go hub.Run()

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Processed listing images
	r.Static("/uploads", services.UploadDir())

	api := r.Group("/api")
	{
		api.POST("/auth/login", handlers.Login())
		api.GET("/ws", handlers.ListingFeed(hub))

		crops := api.Group("/crops")
		{
			crops.GET("", handlers.GetCropListings(st))
			crops.POST("", handlers.CreateCropListing(st, hub))
			crops.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteCropListing(st, hub))
		}

		pesticides := api.Group("/pesticides")
		{
			pesticides.GET("", handlers.GetPesticideListings(st))
			pesticides.POST("", handlers.CreatePesticideListing(st, hub))
			pesticides.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeletePesticideListing(st, hub))
		}

		transport := api.Group("/transport")
		{
			transport.GET("", handlers.GetTransportListings(st))
			transport.GET("/available", handlers.GetAvailableTransport(st))
			transport.GET("/:id/estimate", handlers.GetTransportEstimate(st))
			transport.POST("", handlers.CreateTransportListing(st, hub))
			transport.PATCH("/:id/availability", middleware.AuthMiddleware(), handlers.UpdateTransportAvailability(st, hub))
			transport.DELETE("/:id", middleware.AuthMiddleware(), handlers.DeleteTransportListing(st, hub))
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
