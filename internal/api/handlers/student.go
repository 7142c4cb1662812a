package handlers

import (
	"net/http"
	"strconv"

	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
)

// StudentHandler handles HTTP requests for student operations
type StudentHandler struct {
	studentService service.StudentServiceInterface
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService service.StudentServiceInterface) *StudentHandler {
	return &StudentHandler{
		studentService: studentService,
	}
}

// GetAllStudents handles GET /students/all
// @Summary List all students
// @Description Get every registered student across all tracks
// @Tags students
// @Produce json
// @Success 200 {array} service.StudentResponse "Successfully retrieved students"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /students/all [get]
func (h *StudentHandler) GetAllStudents(c *gin.Context) {
	students, err := h.studentService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// LikeSearch handles GET /students/like
// @Summary Search students
// @Description Case-insensitive substring search over the serialized student data
// @Tags students
// @Produce json
// @Param like query string true "Search substring"
// @Success 200 {array} service.StudentResponse "Matching students"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /students/like [get]
func (h *StudentHandler) LikeSearch(c *gin.Context) {
	students, err := h.studentService.LikeSearch(c.Query("like"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetCaptains handles GET /students/captains
// @Summary List captains on the current track
// @Description Get the captains of every team on the current track of the given type
// @Tags students
// @Produce json
// @Param type query string true "Track type (bachelor or master)"
// @Success 200 {array} service.StudentResponse "Captains"
// @Failure 400 {object} ErrorResponse "Invalid track type"
// @Failure 404 {object} ErrorResponse "No current track"
// @Security BearerAuth
// @Router /students/captains [get]
func (h *StudentHandler) GetCaptains(c *gin.Context) {
	trackType, err := models.ParseTrackType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	captains, err := h.studentService.GetCaptains(trackType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, captains)
}

// GetByCurrentTrack handles GET /students/current
// @Summary List students on the current track
// @Description Get every student registered on the current track of the given type
// @Tags students
// @Produce json
// @Param type query string true "Track type (bachelor or master)"
// @Success 200 {array} service.StudentResponse "Students on the track"
// @Failure 400 {object} ErrorResponse "Invalid track type"
// @Failure 404 {object} ErrorResponse "No current track"
// @Security BearerAuth
// @Router /students/current [get]
func (h *StudentHandler) GetByCurrentTrack(c *gin.Context) {
	trackType, err := models.ParseTrackType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	students, err := h.studentService.GetByCurrentTrack(trackType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// FindByStatus handles GET /students/status
// @Summary Filter students by placement status
// @Description Get the students on a track filtered by whether they are on a team
// @Tags students
// @Produce json
// @Param status query bool true "Placement status"
// @Param track_id query int true "Track ID"
// @Success 200 {array} service.StudentResponse "Matching students"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /students/status [get]
func (h *StudentHandler) FindByStatus(c *gin.Context) {
	status, err := strconv.ParseBool(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	trackID, err := strconv.ParseInt(c.Query("track_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid track_id"})
		return
	}

	students, err := h.studentService.FindByStatusAndTrackID(status, trackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// FindByTag handles GET /students/tag
// @Summary Filter students by tag
// @Description Get the students on a track whose tags contain the given tag
// @Tags students
// @Produce json
// @Param tag query string true "Tag"
// @Param track_id query int true "Track ID"
// @Success 200 {array} service.StudentResponse "Matching students"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /students/tag [get]
func (h *StudentHandler) FindByTag(c *gin.Context) {
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

	students, err := h.studentService.FindByTagAndTrackID(tag, trackID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

// GetStudentByID handles GET /students/id/:id
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} service.StudentResponse "Successfully retrieved student"
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/id/{id} [get]
func (h *StudentHandler) GetStudentByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	student, err := h.studentService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// GetSubscriptions handles GET /students/id/:id/subscriptions
// @Summary List a student's applications
// @Description Get the teams a student has applied to, in application order
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {array} service.TeamResponse "Applied-to teams"
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/id/{id}/subscriptions [get]
func (h *StudentHandler) GetSubscriptions(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	teams, err := h.studentService.GetSubscriptions(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetStudentByEmail handles GET /students/:email
// @Summary Get student by email
// @Description Get a student by email; a bare login gets the university domain appended
// @Tags students
// @Produce json
// @Param email path string true "Email or bare login"
// @Success 200 {object} service.StudentResponse "Successfully retrieved student"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/{email} [get]
func (h *StudentHandler) GetStudentByEmail(c *gin.Context) {
	student, err := h.studentService.GetByEmail(c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// RegisterStudent handles POST /students/register/:type
// @Summary Register a student
// @Description Register a student on the current track of the given type
// @Tags students
// @Accept json
// @Produce json
// @Param type path string true "Track type (bachelor or master)"
// @Param student body service.RegisterStudentRequest true "Student data"
// @Success 201 {object} service.StudentResponse "Successfully registered student"
// @Failure 400 {object} ErrorResponse "Invalid request body or track type"
// @Failure 404 {object} ErrorResponse "No current track"
// @Security BearerAuth
// @Router /students/register/{type} [post]
func (h *StudentHandler) RegisterStudent(c *gin.Context) {
	trackType, err := models.ParseTrackType(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req service.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Register(trackType, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

// UpdateStudent handles PUT /students/id/:id
// @Summary Update student data
// @Description Apply a partial update to a student's own data
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param student body service.UpdateStudentRequest true "Fields to update"
// @Success 200 {object} service.StudentResponse "Successfully updated student"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/id/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

// DeleteStudent handles DELETE /students/id/:id
// @Summary Delete a student
// @Description Delete a student, releasing their team seat when placed
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 204 "Successfully deleted student"
// @Failure 400 {object} ErrorResponse "Invalid student ID"
// @Failure 404 {object} ErrorResponse "Student not found"
// @Security BearerAuth
// @Router /students/id/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
