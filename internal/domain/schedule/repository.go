package schedule

import (
	"context"
	"errors"

	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// Storage-level sentinels. Implementations translate their native failures
// (gorm.ErrRecordNotFound, unique-index violations, map misses) into these.
var (
	ErrNotFound  = errors.New("record not found")
	ErrSlotTaken = errors.New("slot already taken")
)

// AppointmentFilter narrows ListAppointments. Zero values mean "any".
type AppointmentFilter struct {
	BarberID string
	Date     string
	Status   string
}

// Repository is the narrow storage contract the scheduling engine depends
// on. Both the GORM store and the in-memory store implement it; the engine
// never touches a concrete store directly.
type Repository interface {
	// -------- Barbers --------
	GetBarberByID(ctx context.Context, id string) (*models.Barber, error)
	ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
	CreateBarber(ctx context.Context, b *models.Barber) error
	UpdateBarber(ctx context.Context, b *models.Barber) error
	DeleteBarber(ctx context.Context, id string) error

	// -------- Appointments --------
	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)

	// FindConflict returns the upcoming appointment occupying the exact
	// (barber, date, time) slot, excluding excludeID, or nil.
	FindConflict(ctx context.Context, barberID, date, timeOfDay, excludeID string) (*models.Appointment, error)

	// CreateAppointment persists a new appointment. Returns ErrSlotTaken
	// when the slot exclusivity constraint rejects it.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error)

	// MoveAppointment atomically updates date/time/barber, preserving
	// identity, status and creation timestamp. Returns ErrSlotTaken and
	// leaves the appointment untouched when the target slot is occupied.
	MoveAppointment(ctx context.Context, id, barberID, date, timeOfDay string) (*models.Appointment, error)

	DeleteAppointment(ctx context.Context, id string) error

	// -------- Blocked slots --------
	ListBlockedSlots(ctx context.Context, barberID, date string) ([]models.BlockedSlot, error)
	CreateBlockedSlot(ctx context.Context, bs *models.BlockedSlot) error
	DeleteBlockedSlot(ctx context.Context, id string) error
}
