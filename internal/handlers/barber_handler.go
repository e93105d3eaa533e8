package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/httpresp"
	"github.com/studio-sofia/barbershop-booking/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewBarberHandler(repo schedule.Repository, auditDispatcher *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{repo: repo, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBarberRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty"`
	PhotoURL  string `json:"photo_url"`
}

// UpdateBarberRequest uses pointers so absent fields stay untouched.
type UpdateBarberRequest struct {
	Name      *string `json:"name"`
	Specialty *string `json:"specialty"`
	PhotoURL  *string `json:"photo_url"`
	IsActive  *bool   `json:"is_active"`
}

// ======================================================
// LIST (INCLUDES INACTIVE)
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.repo.ListBarbers(c.Request.Context(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, barbers)
}

// ======================================================
// CREATE
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request data.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 2 {
		httperr.BadRequest(c, httperr.CodeValidation, "Name must be at least 2 characters.")
		return
	}

	barber := &models.Barber{
		ID:        uuid.NewString(),
		Name:      name,
		Specialty: strings.TrimSpace(req.Specialty),
		PhotoURL:  strings.TrimSpace(req.PhotoURL),
		IsActive:  true,
	}

	if err := h.repo.CreateBarber(c.Request.Context(), barber); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: barber.ID,
	})

	httpresp.Created(c, barber)
}

// ======================================================
// UPDATE
// ======================================================

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request data.")
		return
	}

	barber, err := h.repo.GetBarberByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Barber not found.")
			return
		}
		respondError(c, err)
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if len(name) < 2 {
			httperr.BadRequest(c, httperr.CodeValidation, "Name must be at least 2 characters.")
			return
		}
		barber.Name = name
	}
	if req.Specialty != nil {
		barber.Specialty = strings.TrimSpace(*req.Specialty)
	}
	if req.PhotoURL != nil {
		barber.PhotoURL = strings.TrimSpace(*req.PhotoURL)
	}
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := h.repo.UpdateBarber(c.Request.Context(), barber); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: barber.ID,
	})

	httpresp.OK(c, barber)
}

// ======================================================
// DELETE
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.DeleteBarber(c.Request.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Barber not found.")
			return
		}
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
