package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// MemoryRepository is a mutex-guarded in-memory store. It backs unit tests
// and single-node embedding. Conflict checks run under the same lock as the
// write, so it provides the serialization the Postgres store gets from its
// unique index.
type MemoryRepository struct {
	mu           sync.RWMutex
	barbers      map[string]models.Barber
	appointments map[string]models.Appointment
	blockedSlots map[string]models.BlockedSlot
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		barbers:      make(map[string]models.Barber),
		appointments: make(map[string]models.Appointment),
		blockedSlots: make(map[string]models.BlockedSlot),
	}
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *MemoryRepository) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.barbers[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return &b, nil
}

func (r *MemoryRepository) ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Barber, 0, len(r.barbers))
	for _, b := range r.barbers {
		if activeOnly && !b.IsActive {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	r.barbers[b.ID] = *b
	return nil
}

func (r *MemoryRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.barbers[b.ID]; !ok {
		return schedule.ErrNotFound
	}
	r.barbers[b.ID] = *b
	return nil
}

func (r *MemoryRepository) DeleteBarber(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.barbers[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(r.barbers, id)
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *MemoryRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	return &ap, nil
}

func (r *MemoryRepository) ListAppointments(ctx context.Context, f schedule.AppointmentFilter) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.BarberID != "" && ap.BarberID != f.BarberID {
			continue
		}
		if f.Date != "" && ap.AppointmentDate != f.Date {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		out = append(out, ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AppointmentDate != out[j].AppointmentDate {
			return out[i].AppointmentDate < out[j].AppointmentDate
		}
		return out[i].AppointmentTime < out[j].AppointmentTime
	})
	return out, nil
}

// findConflictLocked requires at least a read lock.
func (r *MemoryRepository) findConflictLocked(barberID, date, timeOfDay, excludeID string) *models.Appointment {
	for _, ap := range r.appointments {
		if ap.BarberID == barberID &&
			ap.AppointmentDate == date &&
			ap.AppointmentTime == timeOfDay &&
			ap.Status == models.StatusUpcoming &&
			ap.ID != excludeID {
			found := ap
			return &found
		}
	}
	return nil
}

func (r *MemoryRepository) FindConflict(ctx context.Context, barberID, date, timeOfDay, excludeID string) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findConflictLocked(barberID, date, timeOfDay, excludeID), nil
}

func (r *MemoryRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = models.StatusUpcoming
	}
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now().UTC()
	}

	if ap.Status == models.StatusUpcoming {
		if c := r.findConflictLocked(ap.BarberID, ap.AppointmentDate, ap.AppointmentTime, ap.ID); c != nil {
			return schedule.ErrSlotTaken
		}
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *MemoryRepository) UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}
	ap.Status = status
	ap.UpdatedAt = time.Now().UTC()
	r.appointments[id] = ap
	return &ap, nil
}

func (r *MemoryRepository) MoveAppointment(ctx context.Context, id, barberID, date, timeOfDay string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, schedule.ErrNotFound
	}

	if c := r.findConflictLocked(barberID, date, timeOfDay, id); c != nil {
		return nil, schedule.ErrSlotTaken
	}

	ap.BarberID = barberID
	ap.AppointmentDate = date
	ap.AppointmentTime = timeOfDay
	ap.UpdatedAt = time.Now().UTC()
	r.appointments[id] = ap
	return &ap, nil
}

func (r *MemoryRepository) DeleteAppointment(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(r.appointments, id)
	return nil
}

// --------------------------------------------------
// Blocked slots
// --------------------------------------------------

func (r *MemoryRepository) ListBlockedSlots(ctx context.Context, barberID, date string) ([]models.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.BlockedSlot
	for _, bs := range r.blockedSlots {
		if barberID != "" && bs.BarberID != barberID {
			continue
		}
		if date != "" && bs.BlockedDate != date {
			continue
		}
		out = append(out, bs)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BlockedDate != out[j].BlockedDate {
			return out[i].BlockedDate < out[j].BlockedDate
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) CreateBlockedSlot(ctx context.Context, bs *models.BlockedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	if bs.CreatedAt.IsZero() {
		bs.CreatedAt = time.Now().UTC()
	}
	r.blockedSlots[bs.ID] = *bs
	return nil
}

func (r *MemoryRepository) DeleteBlockedSlot(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blockedSlots[id]; !ok {
		return schedule.ErrNotFound
	}
	delete(r.blockedSlots, id)
	return nil
}

// Compile-time check
var _ schedule.Repository = (*MemoryRepository)(nil)
