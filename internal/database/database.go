package database

import (
	"log"
	"strings"

	"hotelbooking/internal/repository"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" driver used for local development
	// and tests.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and, on PostgreSQL, installs the exclusion
// constraint that rejects two bookings of the same room with overlapping
// half-open date ranges. The constraint closes the check-then-write race
// that the admission sequence alone leaves open; on SQLite the application
// level check is the only guard.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return err
	}
	if err := db.Exec("ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap").Error; err != nil {
		return err
	}
	return db.Exec(`
ALTER TABLE bookings
  ADD CONSTRAINT bookings_no_overlap
  EXCLUDE USING gist (
    room_id WITH =,
    tstzrange(start_date, end_date, '[)') WITH &&
  )`).Error
}
