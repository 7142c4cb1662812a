package handlers

import (
	"net/http"

	"github.com/sawwere/team-selection/internal/database/models"

	"github.com/gin-gonic/gin"
)

// TagsHandler serves the tag vocabulary
type TagsHandler struct{}

// NewTagsHandler creates a new tags handler
func NewTagsHandler() *TagsHandler {
	return &TagsHandler{}
}

// GetTags handles GET /tags
// @Summary List skill tags
// @Description Get the vocabulary students and teams pick their tags from
// @Tags tags
// @Produce json
// @Success 200 {array} string "Tag vocabulary"
// @Router /tags [get]
func (h *TagsHandler) GetTags(c *gin.Context) {
	c.JSON(http.StatusOK, models.SkillTags)
}
