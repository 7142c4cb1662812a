package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/repository"
	"github.com/sawwere/team-selection/internal/selection"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams, including the membership
// lifecycle. Every transition runs inside a single transaction so the
// student row, the team row and the token strings never drift apart.
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	students  repository.StudentRepositoryInterface
	tracks    repository.TrackRepositoryInterface
	trackSvc  TrackServiceInterface
	tx        repository.TxManager
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(
	repos *repository.Repositories,
	trackSvc TrackServiceInterface,
	tx repository.TxManager,
	validator *validator.Validate,
) *TeamService {
	return &TeamService{
		teams:     repos.Teams,
		students:  repos.Students,
		tracks:    repos.Tracks,
		trackSvc:  trackSvc,
		tx:        tx,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team on the current track
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	About       string `json:"about" validate:"max=1000"`
	ProjectType string `json:"project_type" validate:"max=200"`
	Tags        string `json:"tags" validate:"max=500"`
	CaptainID   int64  `json:"captain_id" validate:"required"`
}

// UpdateTeamRequest represents a partial update of a team's descriptive fields
type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	About       *string `json:"about,omitempty" validate:"omitempty,max=1000"`
	ProjectType *string `json:"project_type,omitempty" validate:"omitempty,max=200"`
	Tags        *string `json:"tags,omitempty" validate:"omitempty,max=500"`
}

// TeamResponse represents the response for team operations.
// Candidates is decoded from the persisted token string into plain ids.
type TeamResponse struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	About              string            `json:"about"`
	ProjectType        string            `json:"project_type"`
	Tags               string            `json:"tags"`
	QuantityOfStudents int               `json:"quantity_of_students"`
	CaptainID          int64             `json:"captain_id"`
	FullFlag           bool              `json:"full_flag"`
	Candidates         []int64           `json:"candidates"`
	CurrentTrackID     *int64            `json:"current_track_id,omitempty"`
	Students           []StudentResponse `json:"students"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
}

// Create creates a team on the current track of the given type with the
// given student as captain. A student already placed on a team cannot found
// another one.
func (s *TeamService) Create(trackType models.TrackType, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	track, err := s.trackSvc.CurrentByType(trackType)
	if err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:        req.Name,
		About:       req.About,
		ProjectType: req.ProjectType,
		Tags:        req.Tags,
	}

	err = s.tx.Do(func(r *repository.Repositories) error {
		captain, err := r.Students.GetByID(req.CaptainID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("failed to get captain: %w", err)
		}
		if captain.Status {
			return apperrors.ErrCannotAddStudent
		}

		// The team row goes in first so its id exists for the captain link
		if err := r.Teams.Create(team); err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}

		selection.InitTeam(team, captain, track)

		if err := r.Teams.Update(team); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		if err := r.Students.Update(captain); err != nil {
			return fmt.Errorf("failed to update captain: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toTeamResponse(team), nil
}

// GetByID retrieves a team by ID with its full member list
func (s *TeamService) GetByID(id int64) (*TeamResponse, error) {
	team, err := s.teams.GetWithStudents(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return toTeamResponse(team), nil
}

// GetAll retrieves all teams with their members
func (s *TeamService) GetAll() ([]TeamResponse, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}
	return toTeamResponses(teams), nil
}

// LikeSearch returns teams matched by any space-separated token of the
// query, each taken as a literal substring of the team's serialized form.
func (s *TeamService) LikeSearch(like string) ([]TeamResponse, error) {
	teams, err := s.teams.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	tokens := strings.Fields(like)
	matched := make([]TeamResponse, 0)
	for i := range teams {
		resp := toTeamResponse(&teams[i])
		raw, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize team: %w", err)
		}
		if matchesAnyToken(string(raw), tokens) {
			matched = append(matched, *resp)
		}
	}
	return matched, nil
}

// Subscribe records a student's application to join a team. No capacity or
// placement guard runs here; those checks happen at approval.
func (s *TeamService) Subscribe(studentID, teamID int64) (*TeamResponse, error) {
	var team *models.Team
	err := s.tx.Do(func(r *repository.Repositories) error {
		student, t, err := loadPair(r, studentID, teamID)
		if err != nil {
			return err
		}

		selection.Subscribe(student, t)

		if err := r.Students.Update(student); err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}
		if err := r.Teams.Update(t); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Approve accepts an applicant onto the team
func (s *TeamService) Approve(studentID, teamID int64) (*TeamResponse, error) {
	var team *models.Team
	err := s.tx.Do(func(r *repository.Repositories) error {
		student, t, err := loadPair(r, studentID, teamID)
		if err != nil {
			return err
		}

		maxConstraint, err := maxConstraintFor(r, t)
		if err != nil {
			return err
		}

		if err := selection.Approve(student, t, maxConstraint); err != nil {
			return err
		}

		if err := r.Students.Update(student); err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}
		if err := r.Teams.Update(t); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Decline withdraws an application from both sides
func (s *TeamService) Decline(studentID, teamID int64) (*TeamResponse, error) {
	var team *models.Team
	err := s.tx.Do(func(r *repository.Repositories) error {
		student, t, err := loadPair(r, studentID, teamID)
		if err != nil {
			return err
		}

		selection.Decline(student, t)

		if err := r.Students.Update(student); err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}
		if err := r.Teams.Update(t); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// RemoveStudent takes a member off the team
func (s *TeamService) RemoveStudent(studentID, teamID int64) (*TeamResponse, error) {
	var team *models.Team
	err := s.tx.Do(func(r *repository.Repositories) error {
		student, t, err := loadPair(r, studentID, teamID)
		if err != nil {
			return err
		}
		if student.CurrentTeamID == nil || *student.CurrentTeamID != t.ID {
			return apperrors.NewConflictError("student is not on this team")
		}

		maxConstraint, err := maxConstraintFor(r, t)
		if err != nil {
			return err
		}

		selection.Remove(student, t, maxConstraint)

		if err := r.Students.Update(student); err != nil {
			return fmt.Errorf("failed to update student: %w", err)
		}
		if err := r.Teams.Update(t); err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		team = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// Update applies a partial update to a team's descriptive fields
func (s *TeamService) Update(id int64, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.teams.GetWithStudents(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.About != nil {
		team.About = *req.About
	}
	if req.ProjectType != nil {
		team.ProjectType = *req.ProjectType
	}
	if req.Tags != nil {
		team.Tags = *req.Tags
	}

	if err := s.teams.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return toTeamResponse(team), nil
}

// Delete disbands a team. Every member is released back to the unplaced
// state before the team row goes away.
func (s *TeamService) Delete(id int64) error {
	return s.tx.Do(func(r *repository.Repositories) error {
		team, err := r.Teams.GetWithStudents(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTeamNotFound
			}
			return fmt.Errorf("failed to get team: %w", err)
		}

		for i := range team.Students {
			student := team.Students[i]
			selection.Detach(&student)
			if err := r.Students.Update(&student); err != nil {
				return fmt.Errorf("failed to release student %d: %w", student.ID, err)
			}
		}

		if err := r.Teams.Delete(id); err != nil {
			return fmt.Errorf("failed to delete team: %w", err)
		}
		return nil
	})
}

// FindByTagAndTrackID retrieves teams on a track whose tags contain the given tag
func (s *TeamService) FindByTagAndTrackID(tag string, trackID int64) ([]TeamResponse, error) {
	if _, err := s.tracks.GetByID(trackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to verify track: %w", err)
	}

	teams, err := s.teams.FindByTagAndTrackID(tag, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	return toTeamResponses(teams), nil
}

// FindByFullFlagAndTrackID retrieves teams on a track filtered by fullness
func (s *TeamService) FindByFullFlagAndTrackID(fullFlag bool, trackID int64) ([]TeamResponse, error) {
	if _, err := s.tracks.GetByID(trackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to verify track: %w", err)
	}

	teams, err := s.teams.FindByFullFlagAndTrackID(fullFlag, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to find teams: %w", err)
	}
	return toTeamResponses(teams), nil
}

// GetCandidates retrieves the students with pending applications to a team,
// in application order. Students deleted since applying are skipped.
func (s *TeamService) GetCandidates(id int64) ([]StudentResponse, error) {
	team, err := s.teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	candidates := make([]StudentResponse, 0)
	for _, studentID := range selection.ParseIDs(team.Candidates) {
		student, err := s.students.GetByID(studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get student %d: %w", studentID, err)
		}
		candidates = append(candidates, *toStudentResponse(student))
	}
	return candidates, nil
}

// loadPair fetches the student and the team a transition operates on
func loadPair(r *repository.Repositories, studentID, teamID int64) (*models.Student, *models.Team, error) {
	student, err := r.Students.GetByID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrStudentNotFound
		}
		return nil, nil, fmt.Errorf("failed to get student: %w", err)
	}

	team, err := r.Teams.GetWithStudents(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrTeamNotFound
		}
		return nil, nil, fmt.Errorf("failed to get team: %w", err)
	}
	return student, team, nil
}

// maxConstraintFor resolves the capacity limit a team's transitions run under
func maxConstraintFor(r *repository.Repositories, team *models.Team) (int, error) {
	if team.CurrentTrackID == nil {
		return 0, apperrors.NewConflictError("team is not on a track")
	}
	track, err := r.Tracks.GetByID(*team.CurrentTrackID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrTrackNotFound
		}
		return 0, fmt.Errorf("failed to get track: %w", err)
	}
	return track.MaxConstraint, nil
}

// toTeamResponse converts a team model to response
func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:                 team.ID,
		Name:               team.Name,
		About:              team.About,
		ProjectType:        team.ProjectType,
		Tags:               team.Tags,
		QuantityOfStudents: team.QuantityOfStudents,
		CaptainID:          team.CaptainID,
		FullFlag:           team.FullFlag,
		Candidates:         selection.ParseIDs(team.Candidates),
		CurrentTrackID:     team.CurrentTrackID,
		Students:           toStudentResponses(team.Students),
		CreatedAt:          team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toTeamResponses(teams []models.Team) []TeamResponse {
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *toTeamResponse(&teams[i])
	}
	return responses
}
