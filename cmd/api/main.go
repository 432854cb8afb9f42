package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"staybook/internal/database"
	"staybook/internal/middleware"
	"staybook/internal/modules/booking"
	"staybook/internal/modules/listing"
	"staybook/internal/modules/review"
	"staybook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "staybook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	listingService := listing.NewService(listingRepo, userRepo)
	listingHandler := listing.NewHandler(listingService)

	bookingService := booking.NewService(bookingRepo, listingRepo, userRepo)
	bookingHandler := booking.NewHandler(bookingService)

	reviewService := review.NewService(reviewRepo, listingRepo, bookingRepo, userRepo)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		listingHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
