package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petcare/internal/domain"
	"petcare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/appointments", h.Request)
	rg.GET("/appointments", h.List)
	rg.POST("/appointments/:id/confirm", h.Confirm)
	rg.POST("/appointments/:id/reject", h.Reject)
	rg.POST("/appointments/:id/cancel", h.Cancel)
}

func (h *Handler) Request(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	var req RequestAppointment
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	appt, err := h.service.Request(c.Request.Context(), req.PetID, ownerID, req.VetID, req.Date, req.Time)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"appointment": DetailsFromEntity(*appt)})
}

func (h *Handler) Confirm(c *gin.Context) {
	vetUserID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment ID")
		return
	}

	var req ConfirmRequest
	// confirmed slot is optional, empty body keeps the requested one
	_ = c.ShouldBindJSON(&req)

	appt, err := h.service.Confirm(c.Request.Context(), id, vetUserID, req.ConfirmedDate, req.ConfirmedTime)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": DetailsFromEntity(*appt)})
}

func (h *Handler) Reject(c *gin.Context) {
	vetUserID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment ID")
		return
	}

	var req RejectAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		return
	}

	appt, err := h.service.Reject(c.Request.Context(), id, vetUserID, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": DetailsFromEntity(*appt)})
}

func (h *Handler) Cancel(c *gin.Context) {
	actorUserID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment ID")
		return
	}

	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	appt, err := h.service.Cancel(c.Request.Context(), id, actorUserID, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"appointment": DetailsFromEntity(*appt)})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	var (
		list []domain.Appointment
		err  error
	)
	if role == string(domain.RoleVet) {
		list, err = h.service.ListForVetUser(c.Request.Context(), userID)
	} else {
		list, err = h.service.ListForOwner(c.Request.Context(), userID)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]AppointmentDetails, 0, len(list))
	for _, a := range list {
		out = append(out, DetailsFromEntity(a))
	}

	response.Success(c, http.StatusOK, gin.H{"appointments": out})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Entity not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Appointment is not in a state that permits this operation")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
