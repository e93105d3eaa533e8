package appointment

import (
	"context"
	"errors"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

type UpdateAppointmentStatus struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(repo schedule.Repository, auditDispatcher *audit.Dispatcher) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{repo: repo, audit: auditDispatcher}
}

// Execute marks an appointment completed or cancelled. Either transition
// releases the slot; terminal appointments reject further changes.
func (uc *UpdateAppointmentStatus) Execute(ctx context.Context, id, status string) (*models.Appointment, error) {
	current, err := uc.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	if err := schedule.CanTransition(current.Status, status); err != nil {
		return nil, err
	}

	updated, err := uc.repo.UpdateAppointmentStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	action := "appointment_completed"
	if status == models.StatusCancelled {
		action = "appointment_cancelled"
	}

	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "appointment",
		EntityID: updated.ID,
	})

	return updated, nil
}
