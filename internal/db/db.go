package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Appointment{},
		&models.BlockedSlot{},
		&models.AdminUser{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// At most one upcoming appointment per barber/date/time. This index is
	// the binding exclusivity guarantee; application-level conflict checks
	// only produce friendlier errors ahead of it.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_upcoming_slot
        ON appointments (barber_id, appointment_date, appointment_time)
        WHERE status = 'upcoming'
    `)

	return db
}
