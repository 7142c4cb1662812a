package handlers

import (
	"net/http"

	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
)

// TrackHandler handles HTTP requests for track operations
type TrackHandler struct {
	trackService service.TrackServiceInterface
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(trackService service.TrackServiceInterface) *TrackHandler {
	return &TrackHandler{
		trackService: trackService,
	}
}

// GetAllTracks handles GET /tracks/all
// @Summary List all tracks
// @Tags tracks
// @Produce json
// @Success 200 {array} models.Track "Successfully retrieved tracks"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tracks/all [get]
func (h *TrackHandler) GetAllTracks(c *gin.Context) {
	tracks, err := h.trackService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tracks)
}

// GetCurrentTrack handles GET /tracks/current
// @Summary Get the current track
// @Description Get the most recently started track of the given type
// @Tags tracks
// @Produce json
// @Param type query string true "Track type (bachelor or master)"
// @Success 200 {object} models.Track "Current track"
// @Failure 400 {object} ErrorResponse "Invalid track type"
// @Failure 404 {object} ErrorResponse "No current track"
// @Security BearerAuth
// @Router /tracks/current [get]
func (h *TrackHandler) GetCurrentTrack(c *gin.Context) {
	trackType, err := models.ParseTrackType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackService.CurrentByType(trackType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// GetTrackByID handles GET /tracks/:id
// @Summary Get track by ID
// @Tags tracks
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} models.Track "Successfully retrieved track"
// @Failure 400 {object} ErrorResponse "Invalid track ID"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /tracks/{id} [get]
func (h *TrackHandler) GetTrackByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	track, err := h.trackService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// CreateTrack handles POST /tracks
// @Summary Create a track
// @Description Create a track; omitted team size constraints get the defaults
// @Tags tracks
// @Accept json
// @Produce json
// @Param track body service.CreateTrackRequest true "Track data"
// @Success 201 {object} models.Track "Successfully created track"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Security BearerAuth
// @Router /tracks [post]
func (h *TrackHandler) CreateTrack(c *gin.Context) {
	var req service.CreateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, track)
}

// UpdateTrack handles PUT /tracks/:id
// @Summary Update track data
// @Tags tracks
// @Accept json
// @Produce json
// @Param id path int true "Track ID"
// @Param track body service.UpdateTrackRequest true "Fields to update"
// @Success 200 {object} models.Track "Successfully updated track"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /tracks/{id} [put]
func (h *TrackHandler) UpdateTrack(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	track, err := h.trackService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, track)
}

// DeleteTrack handles DELETE /tracks/:id
// @Summary Delete a track
// @Tags tracks
// @Produce json
// @Param id path int true "Track ID"
// @Success 204 "Successfully deleted track"
// @Failure 400 {object} ErrorResponse "Invalid track ID"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /tracks/{id} [delete]
func (h *TrackHandler) DeleteTrack(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.trackService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
