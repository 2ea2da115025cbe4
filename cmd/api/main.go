package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/guest"
	"hotelbooking/internal/modules/room"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	bookingService := booking.NewService(bookingRepo, roomRepo)
	bookingHandler := booking.NewHandler(bookingService)

	roomService := room.NewService(roomRepo, bookingRepo)
	roomHandler := room.NewHandler(roomService)

	guestService := guest.NewService(guestRepo, bookingRepo)
	guestHandler := guest.NewHandler(guestService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		bookingHandler.RegisterRoutes(v1)
		roomHandler.RegisterRoutes(v1)
		guestHandler.RegisterRoutes(v1)
	}

	addr := ":8080"
	if p := os.Getenv("PORT"); p != "" {
		addr = ":" + p
	}
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
