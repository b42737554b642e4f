package transport

import (
	"net/http"

	"github.com/ds124wfegd/event-catalog/internal/service"
	"github.com/gin-gonic/gin"
)

type TrackHandler struct {
	trackService service.TrackService
}

func NewTrackHandler(trackService service.TrackService) *TrackHandler {
	return &TrackHandler{trackService: trackService}
}

func (h *TrackHandler) CreateTrack(c *gin.Context) {
	var req service.CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackService.CreateTrack(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, track)
}

func (h *TrackHandler) UpdateTrack(c *gin.Context) {
	var req service.UpdateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.trackService.UpdateTrack(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event track updated"})
}

func (h *TrackHandler) GetTrack(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	track, err := h.trackService.GetTrack(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, track)
}

func (h *TrackHandler) GetAllTracks(c *gin.Context) {
	tracks, err := h.trackService.GetAllTracks(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tracks)
}

func (h *TrackHandler) DeleteTrack(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.trackService.DeleteTrack(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event track deleted"})
}
