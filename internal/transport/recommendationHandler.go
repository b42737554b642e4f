package transport

import (
	"net/http"

	"github.com/ds124wfegd/event-catalog/internal/service"
	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationService service.RecommendationService
}

func NewRecommendationHandler(recommendationService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req struct {
		EventID int64 `json:"eventId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recommendationService.Recommend(c.Request.Context(), req.EventID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "event recommended"})
}

func (h *RecommendationHandler) ListRecommended(c *gin.Context) {
	ids, err := h.recommendationService.ListRecommended(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommended": ids})
}
