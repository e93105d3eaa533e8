package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/catalog"
	"github.com/studio-sofia/barbershop-booking/internal/domain/antispam"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/lock"
	"github.com/studio-sofia/barbershop-booking/internal/models"
	"github.com/studio-sofia/barbershop-booking/internal/validators"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceIDs []string
	BarberID   string

	Date string
	Time string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

type CreateAppointmentOutput struct {
	Appointment  *models.Appointment `json:"appointment"`
	Warnings     []string            `json:"warnings"`
	IsDuplicate  bool                `json:"is_duplicate"`
	IsSuspicious bool                `json:"is_suspicious"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    schedule.Repository
	guard   *schedule.ConflictGuard
	checker *antispam.Checker
	locker  lock.SlotLocker
	audit   *audit.Dispatcher
}

func NewCreateAppointment(
	repo schedule.Repository,
	guard *schedule.ConflictGuard,
	checker *antispam.Checker,
	locker lock.SlotLocker,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		guard:   guard,
		checker: checker,
		locker:  locker,
		audit:   auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1. Field validation, before touching the store
	// --------------------------------------------------
	if err := validateCreateInput(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Barber must exist and accept public bookings
	// --------------------------------------------------
	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
		}
		return nil, err
	}
	if !barber.IsActive {
		return nil, httperr.ErrBusiness(httperr.CodeBarberUnavailable)
	}

	// --------------------------------------------------
	// 3. Every service must exist in the catalog
	// --------------------------------------------------
	for _, id := range in.ServiceIDs {
		if _, ok := catalog.ServiceByID(id); !ok {
			return nil, httperr.ErrBusinessf(httperr.CodeServiceUnknown, id)
		}
	}

	// --------------------------------------------------
	// 4. Guard + heuristic + insert, serialized per slot
	// --------------------------------------------------
	var out *CreateAppointmentOutput

	err = uc.locker.WithSlotLock(ctx, lock.SlotKey(in.BarberID, in.Date, in.Time), func(lockCtx context.Context) error {
		conflict, err := uc.guard.HasConflict(lockCtx, in.BarberID, in.Date, in.Time, "")
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		spam, err := uc.checker.Check(lockCtx, in.CustomerName, in.CustomerPhone, in.Date, in.Time)
		if err != nil {
			return err
		}
		if spam.Blocked() {
			return httperr.ErrBusiness(httperr.CodeRateLimited)
		}

		ap := &models.Appointment{
			ServiceIDs:      models.ServiceIDList(in.ServiceIDs),
			BarberID:        in.BarberID,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
			CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
			AppointmentDate: in.Date,
			AppointmentTime: in.Time,
			Status:          models.StatusUpcoming,
			Flagged:         spam.IsSuspicious || spam.IsDuplicate,
			FlagReason:      strings.Join(spam.Warnings, "; "),
		}

		if err := uc.repo.CreateAppointment(lockCtx, ap); err != nil {
			if errors.Is(err, schedule.ErrSlotTaken) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
			return err
		}

		out = &CreateAppointmentOutput{
			Appointment:  ap,
			Warnings:     spam.Warnings,
			IsDuplicate:  spam.IsDuplicate,
			IsSuspicious: spam.IsSuspicious,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, lock.ErrLockNotAcquired) {
			// Another request is claiming this exact slot right now.
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: out.Appointment.ID,
	})

	if out.Appointment.Flagged {
		uc.audit.Dispatch(audit.Event{
			Action:   "booking_flagged",
			Entity:   "appointment",
			EntityID: out.Appointment.ID,
			Metadata: map[string]any{
				"customer_name":  out.Appointment.CustomerName,
				"customer_phone": out.Appointment.CustomerPhone,
				"warnings":       out.Warnings,
			},
		})
	}

	return out, nil
}

func validateCreateInput(in CreateAppointmentInput) error {
	if len(in.ServiceIDs) == 0 || in.BarberID == "" || in.Date == "" || in.Time == "" ||
		in.CustomerName == "" || in.CustomerPhone == "" {
		return httperr.ErrBusinessf(httperr.CodeValidation, "missing required fields")
	}
	if !validators.IsValidDate(in.Date) {
		return httperr.ErrBusinessf(httperr.CodeValidation, "invalid date format, expected YYYY-MM-DD")
	}
	if !validators.IsValidTime(in.Time) {
		return httperr.ErrBusinessf(httperr.CodeValidation, "invalid time format, expected HH:MM")
	}
	if !validators.IsValidPhone(in.CustomerPhone) {
		return httperr.ErrBusinessf(httperr.CodeValidation, "invalid phone number")
	}
	if !validators.IsValidName(in.CustomerName) {
		return httperr.ErrBusinessf(httperr.CodeValidation, "name must be at least 2 characters")
	}
	return nil
}
