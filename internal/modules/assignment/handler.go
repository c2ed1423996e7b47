package assignment

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
	rg.POST("/assignments", h.Create)
	rg.GET("/assignments", h.List)
	rg.POST("/assignments/:id/supersede", h.Supersede)
	rg.POST("/assignments/:id/accept", h.Accept)
	rg.POST("/assignments/:id/reject", h.Reject)
}

func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	var (
		out *domain.AssignmentRequest
		err error
	)
	if req.Replace {
		out, err = h.service.Replace(c.Request.Context(), req.PetID, ownerID, req.VetID)
	} else {
		out, err = h.service.Create(c.Request.Context(), req.PetID, ownerID, req.VetID)
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"request": out})
}

func (h *Handler) Supersede(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	if err := h.service.Supersede(c.Request.Context(), id, ownerID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "status": domain.AssignmentCancelled})
}

func (h *Handler) Accept(c *gin.Context) {
	vetUserID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	out, err := h.service.Accept(c.Request.Context(), id, vetUserID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": out})
}

func (h *Handler) Reject(c *gin.Context) {
	vetUserID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	var req RejectRequest
	// reason is optional, so an empty body is fine
	_ = c.ShouldBindJSON(&req)

	out, err := h.service.Reject(c.Request.Context(), id, vetUserID, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"request": out})
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	var (
		list []domain.AssignmentRequest
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

	response.Success(c, http.StatusOK, gin.H{"requests": list})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Entity not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	case errors.Is(err, ErrPendingExists):
		response.Error(c, http.StatusConflict, "CONFLICT", "A pending request already exists for this pet")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Request is not in a state that permits this operation")
	case errors.Is(err, ErrVetUnavailable):
		response.Error(c, http.StatusConflict, "VET_UNAVAILABLE", "Vet is not accepting requests")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
