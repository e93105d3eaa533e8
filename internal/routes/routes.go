package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/clock"
	"github.com/studio-sofia/barbershop-booking/internal/config"
	"github.com/studio-sofia/barbershop-booking/internal/domain/antispam"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/handlers"
	infraRepo "github.com/studio-sofia/barbershop-booking/internal/infra/repository"
	"github.com/studio-sofia/barbershop-booking/internal/lock"
	"github.com/studio-sofia/barbershop-booking/internal/middleware"
	ucAppointment "github.com/studio-sofia/barbershop-booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, locker lock.SlotLocker) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// DOMAIN ENGINE
	// ======================================================
	guard := schedule.NewConflictGuard(repo)
	calculator := schedule.NewCalculator(repo, cfg.Hours)
	checker := antispam.NewChecker(repo, cfg.Spam, clock.Real())

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		repo,
		guard,
		checker,
		locker,
		auditDispatcher,
	)

	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(
		repo,
		guard,
		locker,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		repo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		repo,
		auditDispatcher,
	)

	getAvailabilityUC := ucAppointment.NewGetAvailability(
		repo,
		calculator,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	publicHandler := handlers.NewPublicHandler(
		repo,
		createAppointmentUC,
		getAvailabilityUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		repo,
		rescheduleAppointmentUC,
		updateStatusUC,
		deleteAppointmentUC,
	)

	blockedSlotHandler := handlers.NewBlockedSlotHandler(repo, auditDispatcher)
	barberHandler := handlers.NewBarberHandler(repo, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/barbers", publicHandler.ListBarbers)
		api.GET("/slots", publicHandler.GetSlots)
		api.POST("/appointments", publicHandler.CreateAppointment)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/verify", authHandler.Verify)

			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/blocked-slots", blockedSlotHandler.List)
			secured.POST("/blocked-slots", blockedSlotHandler.Create)
			secured.DELETE("/blocked-slots/:id", blockedSlotHandler.Delete)

			secured.GET("/admin/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)
		}
	}
}
