package handlers

import (
	"fmt"
	"net/http"

	"github.com/sawwere/team-selection/internal/logger"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles administrative HTTP requests
type AdminHandler struct {
	userService   service.UserServiceInterface
	reportService service.ReportServiceInterface
	logger        *logger.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService service.UserServiceInterface, reportService service.ReportServiceInterface, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		userService:   userService,
		reportService: reportService,
		logger:        log,
	}
}

// GiveRole handles PUT /admin/role
// @Summary Assign a role
// @Description Assign a role to a user account by email
// @Tags admin
// @Accept json
// @Produce json
// @Param role body service.GiveRoleRequest true "Email and role"
// @Success 200 {object} models.User "Successfully assigned role"
// @Failure 400 {object} ErrorResponse "Unknown role"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/role [put]
func (h *AdminHandler) GiveRole(c *gin.Context) {
	var req service.GiveRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.GiveRole(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.WithContext(c.Request.Context()).
		WithField("target", req.Email).
		WithField("role", req.Role).
		Info("Role assigned")
	c.JSON(http.StatusOK, user)
}

// ExportTrackReport handles GET /admin/report/:trackId
// @Summary Export a track roster
// @Description Download the track roster as an Excel workbook
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param trackId path int true "Track ID"
// @Success 200 {file} binary "Roster workbook"
// @Failure 400 {object} ErrorResponse "Invalid track ID"
// @Failure 404 {object} ErrorResponse "Track not found"
// @Security BearerAuth
// @Router /admin/report/{trackId} [get]
func (h *AdminHandler) ExportTrackReport(c *gin.Context) {
	trackID, ok := parseIDParam(c, "trackId")
	if !ok {
		return
	}

	f, err := h.reportService.ExcelForTrack(trackID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=track_%d_report.xlsx", trackID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.WithContext(c.Request.Context()).WithError(err).Error("Failed to write report")
	}
}
