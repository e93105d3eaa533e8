package appointment

import (
	"context"
	"errors"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/lock"
	"github.com/studio-sofia/barbershop-booking/internal/models"
	"github.com/studio-sofia/barbershop-booking/internal/validators"
)

type RescheduleAppointmentInput struct {
	ID string

	NewDate string
	NewTime string

	// Optional: move the appointment to a different barber as well.
	NewBarberID string
}

type RescheduleAppointment struct {
	repo   schedule.Repository
	guard  *schedule.ConflictGuard
	locker lock.SlotLocker
	audit  *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo schedule.Repository,
	guard *schedule.ConflictGuard,
	locker lock.SlotLocker,
	auditDispatcher *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:   repo,
		guard:  guard,
		locker: locker,
		audit:  auditDispatcher,
	}
}

// Execute moves an appointment to a new slot. On conflict the appointment is
// left exactly where it was; there is never a window where it holds both
// slots or neither.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.NewDate == "" || in.NewTime == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "new date and time are required")
	}
	if !validators.IsValidDate(in.NewDate) {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "invalid date format, expected YYYY-MM-DD")
	}
	if !validators.IsValidTime(in.NewTime) {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "invalid time format, expected HH:MM")
	}

	current, err := uc.repo.GetAppointmentByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	targetBarber := current.BarberID
	if in.NewBarberID != "" {
		barber, err := uc.repo.GetBarberByID(ctx, in.NewBarberID)
		if err != nil {
			if errors.Is(err, schedule.ErrNotFound) {
				return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
			}
			return nil, err
		}
		targetBarber = barber.ID
	}

	var moved *models.Appointment

	err = uc.locker.WithSlotLock(ctx, lock.SlotKey(targetBarber, in.NewDate, in.NewTime), func(lockCtx context.Context) error {
		conflict, err := uc.guard.HasConflict(lockCtx, targetBarber, in.NewDate, in.NewTime, current.ID)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		moved, err = uc.repo.MoveAppointment(lockCtx, current.ID, targetBarber, in.NewDate, in.NewTime)
		if err != nil {
			switch {
			case errors.Is(err, schedule.ErrSlotTaken):
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			case errors.Is(err, schedule.ErrNotFound):
				return httperr.ErrBusiness(httperr.CodeNotFound)
			}
			return err
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: moved.ID,
		Metadata: map[string]any{
			"from_barber": current.BarberID,
			"from_date":   current.AppointmentDate,
			"from_time":   current.AppointmentTime,
			"to_barber":   moved.BarberID,
			"to_date":     moved.AppointmentDate,
			"to_time":     moved.AppointmentTime,
		},
	})

	return moved, nil
}
