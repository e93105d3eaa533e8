package httperr

import "errors"

// Business error codes shared between usecases and handlers.
const (
	CodeValidation        = "validation"
	CodeBarberUnavailable = "barber_unavailable"
	CodeServiceUnknown    = "service_unknown"
	CodeSlotConflict      = "slot_conflict"
	CodeRateLimited       = "rate_limited"
	CodeNotFound          = "not_found"
	CodeInvalidState      = "invalid_state"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code, or "" for non-business errors.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
