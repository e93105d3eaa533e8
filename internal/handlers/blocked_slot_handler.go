package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studio-sofia/barbershop-booking/internal/audit"
	"github.com/studio-sofia/barbershop-booking/internal/domain/schedule"
	"github.com/studio-sofia/barbershop-booking/internal/httperr"
	"github.com/studio-sofia/barbershop-booking/internal/httpresp"
	"github.com/studio-sofia/barbershop-booking/internal/models"
	"github.com/studio-sofia/barbershop-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedSlotHandler struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
}

func NewBlockedSlotHandler(repo schedule.Repository, auditDispatcher *audit.Dispatcher) *BlockedSlotHandler {
	return &BlockedSlotHandler{repo: repo, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockedSlotRequest struct {
	BarberID    string `json:"barber_id" binding:"required"`
	BlockedDate string `json:"blocked_date" binding:"required"`

	// Both or neither: omitting both blocks the whole day.
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`

	Reason string `json:"reason"`
}

// ======================================================
// LIST
// ======================================================

func (h *BlockedSlotHandler) List(c *gin.Context) {
	blocks, err := h.repo.ListBlockedSlots(c.Request.Context(), c.Query("barber_id"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, blocks)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockedSlotHandler) Create(c *gin.Context) {
	var req CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid request data.")
		return
	}

	if !validators.IsValidDate(req.BlockedDate) {
		httperr.BadRequest(c, httperr.CodeValidation, "Invalid date format, expected YYYY-MM-DD.")
		return
	}

	if (req.StartTime == nil) != (req.EndTime == nil) {
		httperr.BadRequest(c, httperr.CodeValidation,
			"start_time and end_time must be provided together.")
		return
	}

	if req.StartTime != nil {
		if !validators.IsValidTime(*req.StartTime) || !validators.IsValidTime(*req.EndTime) {
			httperr.BadRequest(c, httperr.CodeValidation, "Invalid time format, expected HH:MM.")
			return
		}
		if *req.StartTime >= *req.EndTime {
			httperr.BadRequest(c, httperr.CodeValidation, "start_time must be before end_time.")
			return
		}
	}

	if _, err := h.repo.GetBarberByID(c.Request.Context(), req.BarberID); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Barber not found.")
			return
		}
		respondError(c, err)
		return
	}

	block := &models.BlockedSlot{
		ID:          uuid.NewString(),
		BarberID:    req.BarberID,
		BlockedDate: req.BlockedDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Reason:      req.Reason,
	}

	if err := h.repo.CreateBlockedSlot(c.Request.Context(), block); err != nil {
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "blocked_slot_created",
		Entity:   "blocked_slot",
		EntityID: block.ID,
		Metadata: map[string]any{
			"barber_id":    block.BarberID,
			"blocked_date": block.BlockedDate,
		},
	})

	httpresp.Created(c, block)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.repo.DeleteBlockedSlot(c.Request.Context(), id); err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "Blocked slot not found.")
			return
		}
		respondError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "blocked_slot_deleted",
		Entity:   "blocked_slot",
		EntityID: id,
	})

	httpresp.OK(c, gin.H{"deleted": true})
}
