package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/studio-sofia/barbershop-booking/internal/catalog"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/httpresp"
	ucAppointment "github.com/studio-sofia/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler serves the unauthenticated booking surface: catalog,
// barbers, availability and appointment creation.
type PublicHandler struct {
	repo         schedule.Repository
	createUC     *ucAppointment.CreateAppointment
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(
	repo schedule.Repository,
	createUC *ucAppointment.CreateAppointment,
	availability *ucAppointment.GetAvailability,
) *PublicHandler {
	return &PublicHandler{
		repo:         repo,
		createUC:     createUC,
		availability: availability,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceIDs []string `json:"service_ids" binding:"required"`
	BarberID   string   `json:"barber_id" binding:"required"`

	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`

	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
	CustomerEmail string `json:"customer_email"`
}

// ======================================================
// CATALOG
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

// ======================================================
// BARBERS
// ======================================================

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, barbers)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) GetSlots(c *gin.Context) {
	barberID := c.Query("barber_id")
	date := c.Query("date")

	slots, err := h.availability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"barber_id": barberID,
		"date":      date,
		"slots":     slots,
	})
}

// ======================================================
// CREATE APPOINTMENT
// ======================================================

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request data.")
		return
	}

	out, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ServiceIDs:    req.ServiceIDs,
		BarberID:      req.BarberID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, out)
}
