package search

import (
	"net/http"

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
	rg.GET("/vets/search", h.Search)
}

func (h *Handler) Search(c *gin.Context) {
	mode, err := ParseMode(c.Query("mode"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "mode must be 'emergency' or 'normal'")
		return
	}

	// Missing or unresolvable caller location is fine, ranking degrades.
	caller := h.service.ResolveCaller(c.Query("location"))

	results, usedFallback, err := h.service.Search(c.Request.Context(), mode, caller)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "SEARCH_FAILED", "Failed to search vets")
		return
	}

	vets := make([]VetResult, 0, len(results))
	for _, r := range results {
		vets = append(vets, VetResult{
			ID:                 r.Vet.ID,
			Name:               r.Vet.Name,
			ClinicName:         r.Vet.ClinicName,
			Location:           r.Vet.Location,
			DistanceKm:         r.DistanceKm,
			EmergencyAvailable: r.MatchedOnCall,
			Premium:            r.Vet.Premium,
			Rating:             r.Vet.Rating,
		})
	}

	response.Success(c, http.StatusOK, SearchResponse{
		Vets:         vets,
		UsedFallback: usedFallback,
	})
}
