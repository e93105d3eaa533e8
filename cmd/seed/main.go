package main

import (
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/studio-sofia/barbershop-booking/internal/catalog"
	"github.com/studio-sofia/barbershop-booking/internal/config"
	dbpkg "github.com/studio-sofia/barbershop-booking/internal/db"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	gofakeit.Seed(time.Now().UnixNano())

	if err := seedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	barbers, err := seedBarbers(db)
	if err != nil {
		log.Fatalf("seed barbers: %v", err)
	}

	if err := seedAppointments(db, cfg, barbers); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	if err := seedBlockedSlot(db, barbers); err != nil {
		log.Fatalf("seed blocked slot: %v", err)
	}

	log.Println("seed complete")
}

func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Where("email = ?", cfg.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin user already present, skipping")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("admin user created: %s", admin.Email)
	return nil
}

func seedBarbers(db *gorm.DB) ([]models.Barber, error) {
	specialties := []string{
		"Classic cuts",
		"Fades and designs",
		"Beard styling",
	}

	barbers := make([]models.Barber, 0, len(specialties))
	for _, spec := range specialties {
		b := models.Barber{
			ID:        uuid.NewString(),
			Name:      gofakeit.Name(),
			Specialty: spec,
			IsActive:  true,
		}
		if err := db.Create(&b).Error; err != nil {
			return nil, err
		}
		barbers = append(barbers, b)
	}

	log.Printf("barbers seeded: %d", len(barbers))
	return barbers, nil
}

func seedAppointments(db *gorm.DB, cfg *config.Config, barbers []models.Barber) error {
	services := catalog.Services()

	const count = 12
	for i := 0; i < count; i++ {
		barber := barbers[gofakeit.Number(0, len(barbers)-1)]
		svc := services[gofakeit.Number(0, len(services)-1)]

		day := time.Now().AddDate(0, 0, gofakeit.Number(1, 14))
		hour := gofakeit.Number(cfg.Hours.StartHour, cfg.Hours.EndHour-1)
		minute := gofakeit.Number(0, 1) * cfg.Hours.SlotMinutes

		ap := models.Appointment{
			ID:              uuid.NewString(),
			ServiceIDs:      models.ServiceIDList{svc.ID},
			BarberID:        barber.ID,
			CustomerName:    gofakeit.Name(),
			CustomerPhone:   fmt.Sprintf("088%07d", gofakeit.Number(0, 9999999)),
			CustomerEmail:   gofakeit.Email(),
			AppointmentDate: day.Format("2006-01-02"),
			AppointmentTime: fmt.Sprintf("%02d:%02d", hour, minute),
			Status:          models.StatusUpcoming,
		}

		// Demo data collides now and then; the unique index settles it.
		if err := db.Create(&ap).Error; err != nil {
			log.Printf("skipping colliding demo appointment: %v", err)
		}
	}

	log.Println("demo appointments seeded")
	return nil
}

func seedBlockedSlot(db *gorm.DB, barbers []models.Barber) error {
	start := "12:00"
	end := "13:00"

	block := models.BlockedSlot{
		ID:          uuid.NewString(),
		BarberID:    barbers[0].ID,
		BlockedDate: time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		StartTime:   &start,
		EndTime:     &end,
		Reason:      "Lunch break",
	}

	if err := db.Create(&block).Error; err != nil {
		return err
	}

	log.Println("blocked slot seeded")
	return nil
}
