package schedule

import (
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// Status transitions: upcoming -> completed and upcoming -> cancelled, both
// terminal. Nothing leaves completed or cancelled.

func IsTerminalStatus(s string) bool {
	return s == models.StatusCompleted || s == models.StatusCancelled
}

func CanTransition(from, to string) error {
	if from != models.StatusUpcoming {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	if !IsTerminalStatus(to) {
		return httperr.ErrBusiness(httperr.CodeValidation)
	}
	return nil
}
