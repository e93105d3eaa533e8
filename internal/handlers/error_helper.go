package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/studio-sofia/barbershop-booking/internal/httperr"
)

var defaultMessages = map[string]string{
	httperr.CodeValidation:        "Invalid request data.",
	httperr.CodeBarberUnavailable: "This barber is not accepting bookings.",
	httperr.CodeServiceUnknown:    "Unknown service.",
	httperr.CodeSlotConflict:      "This time slot is already taken.",
	httperr.CodeRateLimited:       "Too many bookings. Please contact us directly.",
	httperr.CodeNotFound:          "Not found.",
	httperr.CodeInvalidState:      "The appointment can no longer be changed.",
}

// respondError maps a usecase error onto the HTTP envelope. Non-business
// errors become opaque 500s.
func respondError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)
	if code == "" {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	msg := defaultMessages[code]
	var be httperr.BusinessError
	if errors.As(err, &be) && be.Message != "" {
		msg = be.Message
	}

	switch code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, msg)
	case httperr.CodeRateLimited:
		httperr.TooManyRequests(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
