package repository

import (
	"github.com/sawwere/team-selection/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TrackRepository handles database operations for tracks
type TrackRepository struct {
	db *gorm.DB
}

// NewTrackRepository creates a new track repository
func NewTrackRepository(db *gorm.DB) *TrackRepository {
	return &TrackRepository{db: db}
}

// Create creates a new track
func (r *TrackRepository) Create(track *models.Track) error {
	return r.db.Omit(clause.Associations).Create(track).Error
}

// GetByID retrieves a track by ID
func (r *TrackRepository) GetByID(id int64) (*models.Track, error) {
	var track models.Track
	err := r.db.First(&track, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// GetWithTeams retrieves a track with its teams and their members
func (r *TrackRepository) GetWithTeams(id int64) (*models.Track, error) {
	var track models.Track
	err := r.db.Preload("CurrentTeams").Preload("CurrentTeams.Students").First(&track, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// GetAll retrieves all tracks
func (r *TrackRepository) GetAll() ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Find(&tracks).Error
	return tracks, err
}

// FindByType retrieves all tracks of the given type ordered by start date, newest first
func (r *TrackRepository) FindByType(trackType models.TrackType) ([]models.Track, error) {
	var tracks []models.Track
	err := r.db.Where("type = ?", trackType).Order("start_date DESC NULLS LAST").Find(&tracks).Error
	return tracks, err
}

// Update updates a track without touching associated rows
func (r *TrackRepository) Update(track *models.Track) error {
	return r.db.Omit(clause.Associations).Save(track).Error
}

// Delete deletes a track
func (r *TrackRepository) Delete(id int64) error {
	return r.db.Delete(&models.Track{}, "id = ?", id).Error
}
