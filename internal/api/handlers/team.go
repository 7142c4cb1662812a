package handlers

import (
	"net/http"
	"strconv"

	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// GetAllTeams handles GET /teams/all
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/all [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.teamService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// LikeSearch handles GET /teams/like
// @Summary Search teams
// @Description Case-insensitive substring search over the serialized team data
// @Tags teams
// @Produce json
// @Param like query string true "Search substring"
// @Success 200 {array} service.TeamResponse "Matching teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /teams/like [get]
func (h *TeamHandler) LikeSearch(c *gin.Context) {
	teams, err := h.teamService.LikeSearch(c.Query("like"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// FindByTag handles GET /teams/tag
// @Summary Filter teams by tag
// @Description Get the teams on a track whose tags contain the given tag
// @Tags teams
// @Produce json
// @Param tag query string true "Tag"
// @Param track_id query int true "Track ID"
// @Success 200 {array} service.TeamResponse "Matching teams"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /teams/tag [get]
func (h *TeamHandler) FindByTag(c *gin.Context) {
	tag := c.Query("tag")
	if tag == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag is required"})
		return
	}
	trackID, err := strconv.ParseInt(c.Query("track_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track_id"})
		return
	}

	teams, err := h.teamService.FindByTagAndTrackID(tag, trackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// FindByFullFlag handles GET /teams/full
// @Summary Filter teams by fullness
// @Description Get the teams on a track that are full or still have room
// @Tags teams
// @Produce json
// @Param full query bool true "Fullness flag"
// @Param track_id query int true "Track ID"
// @Success 200 {array} service.TeamResponse "Matching teams"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /teams/full [get]
func (h *TeamHandler) FindByFullFlag(c *gin.Context) {
	full, err := strconv.ParseBool(c.Query("full"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid full"})
		return
	}
	trackID, err := strconv.ParseInt(c.Query("track_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track_id"})
		return
	}

	teams, err := h.teamService.FindByFullFlagAndTrackID(full, trackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeamByID handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeamByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// GetCandidates handles GET /teams/:id/candidates
// @Summary List a team's candidates
// @Description Get the students that applied to the team, in application order
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {array} service.StudentResponse "Applied students"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/candidates [get]
func (h *TeamHandler) GetCandidates(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	students, err := h.teamService.GetCandidates(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// CreateTeam handles POST /teams/create/:type
// @Summary Create a team
// @Description Create a team on the current track of the given type, with the captain as first member
// @Tags teams
// @Accept json
// @Produce json
// @Param type path string true "Track type (bachelor or master)"
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body or track type"
// @Failure 404 {object} ErrorResponse "No current track or captain not found"
// @Failure 409 {object} ErrorResponse "Captain already on a team"
// @Security BearerAuth
// @Router /teams/create/{type} [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	trackType, err := models.ParseTrackType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(trackType, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update team data
// @Description Apply a partial update to a team's own data
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team, detaching every member back to unplaced
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Subscribe handles PUT /teams/:id/subscribe/:studentId
// @Summary Apply to a team
// @Description Record a student's application to a team
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} service.TeamResponse "Application recorded"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team or student not found"
// @Failure 409 {object} ErrorResponse "Student already on a team or team is full"
// @Security BearerAuth
// @Router /teams/{id}/subscribe/{studentId} [put]
func (h *TeamHandler) Subscribe(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	team, err := h.teamService.Subscribe(studentID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Approve handles PUT /teams/:id/approve/:studentId
// @Summary Approve an application
// @Description Accept an applicant onto the team and clear their other applications
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} service.TeamResponse "Applicant accepted"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team or student not found"
// @Failure 409 {object} ErrorResponse "Student already placed or team is full"
// @Security BearerAuth
// @Router /teams/{id}/approve/{studentId} [put]
func (h *TeamHandler) Approve(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	team, err := h.teamService.Approve(studentID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Decline handles PUT /teams/:id/decline/:studentId
// @Summary Decline an application
// @Description Reject an applicant, removing the mutual application records
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} service.TeamResponse "Applicant declined"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team or student not found"
// @Security BearerAuth
// @Router /teams/{id}/decline/{studentId} [put]
func (h *TeamHandler) Decline(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	team, err := h.teamService.Decline(studentID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemoveStudent handles DELETE /teams/:id/students/:studentId
// @Summary Remove a member
// @Description Remove a member from the team, releasing their seat
// @Tags teams
// @Produce json
// @Param id path int true "Team ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} service.TeamResponse "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid IDs"
// @Failure 404 {object} ErrorResponse "Team or student not found"
// @Failure 409 {object} ErrorResponse "Student is not on this team"
// @Security BearerAuth
// @Router /teams/{id}/students/{studentId} [delete]
func (h *TeamHandler) RemoveStudent(c *gin.Context) {
	teamID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(c, "studentId")
	if !ok {
		return
	}

	team, err := h.teamService.RemoveStudent(studentID, teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}
