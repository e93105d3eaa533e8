package appointment

import (
	"context"
	"errors"

	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/validators"
)

type GetAvailability struct {
	repo schedule.Repository
	calc *schedule.Calculator
}

func NewGetAvailability(repo schedule.Repository, calc *schedule.Calculator) *GetAvailability {
	return &GetAvailability{repo: repo, calc: calc}
}

func (uc *GetAvailability) Execute(ctx context.Context, barberID, date string) ([]schedule.TimeSlot, error) {
	if barberID == "" || date == "" {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "barber_id and date are required")
	}
	if !validators.IsValidDate(date) {
		return nil, httperr.ErrBusinessf(httperr.CodeValidation, "invalid date format, expected YYYY-MM-DD")
	}

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return uc.calc.AvailableSlots(ctx, barberID, date)
}
