package database

import (
	"log"

	"github.com/confhall/registration-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Enrollment{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Payment{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Unique index: a room can be held by at most one booking, even when two
	// requests pass the service-level check at the same time
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_booking_room
		ON bookings (room_id)
	`)

	return db
}
