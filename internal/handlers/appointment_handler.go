package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/httpresp"
	ucAppointment "github.com/studio-sofia/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler is the admin-side lifecycle surface.
type AppointmentHandler struct {
	repo         schedule.Repository
	rescheduleUC *ucAppointment.RescheduleAppointment
	statusUC     *ucAppointment.UpdateAppointmentStatus
	deleteUC     *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	repo schedule.Repository,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	statusUC *ucAppointment.UpdateAppointmentStatus,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:         repo,
		rescheduleUC: rescheduleUC,
		statusUC:     statusUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// UpdateAppointmentRequest carries either a status change or a reschedule,
// never both in one call.
type UpdateAppointmentRequest struct {
	Status string `json:"status"`

	NewDate     string `json:"new_date"`
	NewTime     string `json:"new_time"`
	NewBarberID string `json:"new_barber_id"`
}

func (r *UpdateAppointmentRequest) isStatusChange() bool {
	return r.Status != ""
}

func (r *UpdateAppointmentRequest) isReschedule() bool {
	return r.NewDate != "" || r.NewTime != "" || r.NewBarberID != ""
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	appointments, err := h.repo.ListAppointments(c.Request.Context(), schedule.AppointmentFilter{
		BarberID: c.Query("barber_id"),
		Date:     c.Query("date"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, appointments)
}

// ======================================================
// UPDATE (STATUS OR RESCHEDULE)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request data.")
		return
	}

	switch {
	case req.isStatusChange() && req.isReschedule():
		httperr.BadRequest(c, httperr.CodeValidation,
			"Send either a status change or a reschedule, not both.")
		return

	case req.isStatusChange():
		ap, err := h.statusUC.Execute(c.Request.Context(), id, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		httpresp.OK(c, ap)

	case req.isReschedule():
		ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
			ID:          id,
			NewDate:     req.NewDate,
			NewTime:     req.NewTime,
			NewBarberID: req.NewBarberID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		httpresp.OK(c, ap)

	default:
		httperr.BadRequest(c, httperr.CodeValidation, "Nothing to update.")
	}
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"deleted": true})
}
