package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM guests")
	db.Exec("DELETE FROM rooms")

	ctx := context.Background()
	roomRepo := repository.NewRoomRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	log.Println("Creating rooms...")
	rooms := []*domain.Room{
		{Name: "101", Level: 1, Price: domain.Price{Amount: 100, Currency: "USD"}},
		{Name: "102", Level: 1, Price: domain.Price{Amount: 120, Currency: "USD"}},
		{Name: "201", Level: 2, Price: domain.Price{Amount: 150, Currency: "USD"}},
		{Name: "202", Level: 2, Price: domain.Price{Amount: 150, Currency: "USD"}, InMaintenance: true},
		{Name: "301", Level: 3, Price: domain.Price{Amount: 240, Currency: "EUR"}},
	}
	for _, r := range rooms {
		if err := roomRepo.Create(ctx, r); err != nil {
			log.Fatal("seed room:", err)
		}
	}

	log.Println("Creating guests...")
	guests := []*domain.Guest{
		{Name: "Ana", Surname: "Souza", Email: "ana.souza@example.com", DocumentNumber: "48213377", DocumentType: domain.DocumentPassport},
		{Name: "Bruno", Surname: "Lima", Email: "bruno.lima@example.com", DocumentNumber: "90514426", DocumentType: domain.DocumentNationalID},
		{Name: "Clara", Surname: "Mendes", Email: "clara.mendes@example.com", DocumentNumber: "73320198", DocumentType: domain.DocumentDriverLicence},
	}
	for _, g := range guests {
		if err := guestRepo.Create(ctx, g); err != nil {
			log.Fatal("seed guest:", err)
		}
	}

	log.Println("Creating a sample booking...")
	start := domain.DateOnly(time.Now().UTC().AddDate(0, 0, 7))
	b := &domain.Booking{
		RoomID:   rooms[0].ID,
		GuestID:  guests[0].ID,
		PlacedAt: time.Now().UTC(),
		Start:    start,
		End:      start.AddDate(0, 0, 2),
		Status:   domain.BookingCreated,
	}
	if err := bookingRepo.Create(ctx, b); err != nil {
		log.Fatal("seed booking:", err)
	}

	log.Printf("Done: %d rooms, %d guests, 1 booking", len(rooms), len(guests))
}
