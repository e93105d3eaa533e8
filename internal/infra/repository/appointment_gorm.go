package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// GormRepository is the Postgres-backed store. Slot exclusivity is enforced
// by the partial unique index on (barber_id, appointment_date,
// appointment_time) WHERE status = 'upcoming'; the guard's pre-check is only
// a fast path producing a friendlier error before the index would reject.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --------------------------------------------------
// Barbers
// --------------------------------------------------

func (r *GormRepository) GetBarberByID(ctx context.Context, id string) (*models.Barber, error) {
	var b models.Barber
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *GormRepository) ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error) {
	q := r.db.WithContext(ctx).Order("created_at ASC")
	if activeOnly {
		q = q.Where("is_active = true")
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

func (r *GormRepository) CreateBarber(ctx context.Context, b *models.Barber) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormRepository) UpdateBarber(ctx context.Context, b *models.Barber) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *GormRepository) DeleteBarber(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Barber{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *GormRepository) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) ListAppointments(ctx context.Context, f schedule.AppointmentFilter) ([]models.Appointment, error) {
	q := r.db.WithContext(ctx).Model(&models.Appointment{})

	if f.BarberID != "" {
		q = q.Where("barber_id = ?", f.BarberID)
	}
	if f.Date != "" {
		q = q.Where("appointment_date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *GormRepository) FindConflict(ctx context.Context, barberID, date, timeOfDay, excludeID string) (*models.Appointment, error) {
	q := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
			barberID, date, timeOfDay, models.StatusUpcoming,
		)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	if ap.Status == "" {
		ap.Status = models.StatusUpcoming
	}

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return schedule.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *GormRepository) UpdateAppointmentStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	var ap models.Appointment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ap, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return schedule.ErrNotFound
			}
			return err
		}
		ap.Status = status
		return tx.Save(&ap).Error
	})
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) MoveAppointment(ctx context.Context, id, barberID, date, timeOfDay string) (*models.Appointment, error) {
	var ap models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ap, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return schedule.ErrNotFound
			}
			return err
		}

		// Re-check the target slot inside the transaction so a failed
		// reschedule never mutates anything.
		var count int64
		if err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"barber_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ? AND id <> ?",
				barberID, date, timeOfDay, models.StatusUpcoming, id,
			).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return schedule.ErrSlotTaken
		}

		ap.BarberID = barberID
		ap.AppointmentDate = date
		ap.AppointmentTime = timeOfDay

		if err := tx.Save(&ap).Error; err != nil {
			if isUniqueViolation(err) {
				return schedule.ErrSlotTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *GormRepository) DeleteAppointment(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Blocked slots
// --------------------------------------------------

func (r *GormRepository) ListBlockedSlots(ctx context.Context, barberID, date string) ([]models.BlockedSlot, error) {
	q := r.db.WithContext(ctx).Model(&models.BlockedSlot{})
	if barberID != "" {
		q = q.Where("barber_id = ?", barberID)
	}
	if date != "" {
		q = q.Where("blocked_date = ?", date)
	}

	var slots []models.BlockedSlot
	if err := q.Order("blocked_date ASC, created_at ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *GormRepository) CreateBlockedSlot(ctx context.Context, bs *models.BlockedSlot) error {
	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(bs).Error
}

func (r *GormRepository) DeleteBlockedSlot(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&models.BlockedSlot{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return schedule.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ schedule.Repository = (*GormRepository)(nil)
