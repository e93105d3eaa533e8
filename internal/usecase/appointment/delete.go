package appointment

import (
	"context"
	"errors"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
)

type DeleteAppointment struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(repo schedule.Repository, auditDispatcher *audit.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, audit: auditDispatcher}
}

// Execute removes an appointment outright. Deleting an upcoming appointment
// frees its slot; deleting twice reports not found.
func (uc *DeleteAppointment) Execute(ctx context.Context, id string) error {
	if err := uc.repo.DeleteAppointment(ctx, id); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: id,
	})

	return nil
}
