package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TrackService handles business logic for tracks
type TrackService struct {
	repo      repository.TrackRepositoryInterface
	tx        repository.TxManager
	validator *validator.Validate
}

// NewTrackService creates a new track service
func NewTrackService(repo repository.TrackRepositoryInterface, tx repository.TxManager, validator *validator.Validate) *TrackService {
	return &TrackService{repo: repo, tx: tx, validator: validator}
}

// CreateTrackRequest represents the request to create a track
type CreateTrackRequest struct {
	Name                     string     `json:"name" validate:"required,max=200"`
	About                    string     `json:"about" validate:"max=1000"`
	StartDate                *time.Time `json:"start_date"`
	EndDate                  *time.Time `json:"end_date"`
	Type                     string     `json:"type" validate:"required,oneof=bachelor master"`
	MinConstraint            int        `json:"min_constraint" validate:"omitempty,min=1"`
	MaxConstraint            int        `json:"max_constraint" validate:"omitempty,min=1"`
	MaxThirdCourseConstraint int        `json:"max_third_course_constraint" validate:"omitempty,min=0"`
}

// UpdateTrackRequest represents a partial update of a track
type UpdateTrackRequest struct {
	Name                     *string    `json:"name,omitempty" validate:"omitempty,max=200"`
	About                    *string    `json:"about,omitempty" validate:"omitempty,max=1000"`
	StartDate                *time.Time `json:"start_date,omitempty"`
	EndDate                  *time.Time `json:"end_date,omitempty"`
	MinConstraint            *int       `json:"min_constraint,omitempty" validate:"omitempty,min=1"`
	MaxConstraint            *int       `json:"max_constraint,omitempty" validate:"omitempty,min=1"`
	MaxThirdCourseConstraint *int       `json:"max_third_course_constraint,omitempty" validate:"omitempty,min=0"`
}

// Create creates a new track
func (s *TrackService) Create(req *CreateTrackRequest) (*models.Track, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	trackType, err := models.ParseTrackType(req.Type)
	if err != nil {
		return nil, apperrors.NewValidationError("type", err.Error())
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date is before start date")
	}

	minConstraint := req.MinConstraint
	if minConstraint == 0 {
		minConstraint = 3
	}
	maxConstraint := req.MaxConstraint
	if maxConstraint == 0 {
		maxConstraint = 5
	}
	if maxConstraint < minConstraint {
		return nil, apperrors.NewValidationError("max_constraint", "max constraint is below min constraint")
	}

	track := &models.Track{
		Name:                     req.Name,
		About:                    req.About,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
		Type:                     trackType,
		MinConstraint:            minConstraint,
		MaxConstraint:            maxConstraint,
		MaxThirdCourseConstraint: req.MaxThirdCourseConstraint,
	}

	if err := s.repo.Create(track); err != nil {
		return nil, fmt.Errorf("failed to create track: %w", err)
	}
	return track, nil
}

// GetByID retrieves a track by ID
func (s *TrackService) GetByID(id int64) (*models.Track, error) {
	track, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	return track, nil
}

// GetAll retrieves all tracks
func (s *TrackService) GetAll() ([]models.Track, error) {
	tracks, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks: %w", err)
	}
	return tracks, nil
}

// Update applies a partial update to a track
func (s *TrackService) Update(id int64, req *UpdateTrackRequest) (*models.Track, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	track, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}

	if req.Name != nil {
		track.Name = *req.Name
	}
	if req.About != nil {
		track.About = *req.About
	}
	if req.StartDate != nil {
		track.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		track.EndDate = req.EndDate
	}
	if req.MinConstraint != nil {
		track.MinConstraint = *req.MinConstraint
	}
	if req.MaxConstraint != nil {
		track.MaxConstraint = *req.MaxConstraint
	}
	if req.MaxThirdCourseConstraint != nil {
		track.MaxThirdCourseConstraint = *req.MaxThirdCourseConstraint
	}
	if track.MaxConstraint < track.MinConstraint {
		return nil, apperrors.NewValidationError("max_constraint", "max constraint is below min constraint")
	}

	if err := s.repo.Update(track); err != nil {
		return nil, fmt.Errorf("failed to update track: %w", err)
	}
	return track, nil
}

// Delete removes a track. Its teams are detached from the track first so no
// team is left pointing at a dead row.
func (s *TrackService) Delete(id int64) error {
	return s.tx.Do(func(r *repository.Repositories) error {
		track, err := r.Tracks.GetWithTeams(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTrackNotFound
			}
			return fmt.Errorf("failed to get track: %w", err)
		}

		for i := range track.CurrentTeams {
			team := &track.CurrentTeams[i]
			team.CurrentTrackID = nil
			if err := r.Teams.Update(team); err != nil {
				return fmt.Errorf("failed to detach team %d: %w", team.ID, err)
			}
		}

		if err := r.Tracks.Delete(id); err != nil {
			return fmt.Errorf("failed to delete track: %w", err)
		}
		return nil
	})
}

// CurrentByType resolves the current track of a type: the one with the
// latest start date among tracks that have one set. A track scheduled ahead
// of the semester is already current.
func (s *TrackService) CurrentByType(trackType models.TrackType) (*models.Track, error) {
	tracks, err := s.repo.FindByType(trackType)
	if err != nil {
		return nil, fmt.Errorf("failed to find tracks: %w", err)
	}

	// the repository orders by start date, newest first
	for i := range tracks {
		if tracks[i].StartDate != nil {
			return &tracks[i], nil
		}
	}
	return nil, apperrors.ErrNoCurrentTrack
}
