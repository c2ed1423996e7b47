package pet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petcare/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/pets", h.Create)
	rg.GET("/pets", h.ListMine)
	rg.GET("/pets/:id", h.Get)
	rg.DELETE("/pets/:id/vet", h.ClearVetLink)
}

func (h *Handler) Create(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), ownerID, req.Name, req.Species, req.Breed, req.BirthDate)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"pet": p})
}

func (h *Handler) ListMine(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	pets, err := h.service.ListMine(c.Request.Context(), ownerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pets": pets})
}

func (h *Handler) Get(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	p, err := h.service.GetOwned(c.Request.Context(), id, ownerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pet": p})
}

func (h *Handler) ClearVetLink(c *gin.Context) {
	ownerID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid pet ID")
		return
	}

	if err := h.service.ClearVetLink(c.Request.Context(), id, ownerID); err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"pet_id": id, "vet_id": nil})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Pet not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
