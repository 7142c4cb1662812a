package repository

import (
	"strings"

	"github.com/sawwere/team-selection/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Omit(clause.Associations).Create(team).Error
}

// GetByID retrieves a team by ID with its track
func (r *TeamRepository) GetByID(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("CurrentTrack").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithStudents retrieves a team with its full member list and track
func (r *TeamRepository) GetWithStudents(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Students").Preload("CurrentTrack").First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams with their members
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Students").Find(&teams).Error
	return teams, err
}

// GetByTrackID retrieves all teams on a track with their members
func (r *TeamRepository) GetByTrackID(trackID int64) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Students").Where("current_track_id = ?", trackID).Find(&teams).Error
	return teams, err
}

// FindByTagAndTrackID retrieves teams on a track whose tag string contains
// any of the space-separated tags as a whole token
func (r *TeamRepository) FindByTagAndTrackID(tag string, trackID int64) ([]models.Team, error) {
	teams := make([]models.Team, 0)
	tokens := strings.Fields(tag)
	if len(tokens) == 0 {
		return teams, nil
	}

	cond := r.db.Where("' ' || tags || ' ' LIKE ?", "% "+tokens[0]+" %")
	for _, token := range tokens[1:] {
		cond = cond.Or("' ' || tags || ' ' LIKE ?", "% "+token+" %")
	}

	err := r.db.Preload("Students").
		Where("current_track_id = ?", trackID).
		Where(cond).
		Find(&teams).Error
	return teams, err
}

// FindByFullFlagAndTrackID retrieves teams on a track filtered by fullness
func (r *TeamRepository) FindByFullFlagAndTrackID(fullFlag bool, trackID int64) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Preload("Students").
		Where("full_flag = ? AND current_track_id = ?", fullFlag, trackID).
		Find(&teams).Error
	return teams, err
}

// Update updates a team without touching associated rows
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Omit(clause.Associations).Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id int64) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
