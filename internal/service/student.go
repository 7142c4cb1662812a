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

// StudentService handles business logic for students
type StudentService struct {
	students    repository.StudentRepositoryInterface
	users       repository.UserRepositoryInterface
	teams       repository.TeamRepositoryInterface
	tracks      repository.TrackRepositoryInterface
	trackSvc    TrackServiceInterface
	tx          repository.TxManager
	validator   *validator.Validate
	emailDomain string
}

// NewStudentService creates a new student service
func NewStudentService(
	repos *repository.Repositories,
	trackSvc TrackServiceInterface,
	tx repository.TxManager,
	validator *validator.Validate,
	emailDomain string,
) *StudentService {
	return &StudentService{
		students:    repos.Students,
		users:       repos.Users,
		teams:       repos.Teams,
		tracks:      repos.Tracks,
		trackSvc:    trackSvc,
		tx:          tx,
		validator:   validator,
		emailDomain: emailDomain,
	}
}

// RegisterStudentRequest represents the request to register a student on the current track
type RegisterStudentRequest struct {
	Fio         string `json:"fio" validate:"required,max=200"`
	Email       string `json:"email" validate:"required,email"`
	Course      int    `json:"course" validate:"required,min=1,max=6"`
	GroupNumber int    `json:"group_number" validate:"required,min=1"`
	AboutSelf   string `json:"about_self" validate:"max=1000"`
	Tags        string `json:"tags" validate:"max=500"`
	Contacts    string `json:"contacts" validate:"max=500"`
}

// UpdateStudentRequest represents a partial update of a student's own data
type UpdateStudentRequest struct {
	Fio         *string `json:"fio,omitempty" validate:"omitempty,max=200"`
	Course      *int    `json:"course,omitempty" validate:"omitempty,min=1,max=6"`
	GroupNumber *int    `json:"group_number,omitempty" validate:"omitempty,min=1"`
	AboutSelf   *string `json:"about_self,omitempty" validate:"omitempty,max=1000"`
	Tags        *string `json:"tags,omitempty" validate:"omitempty,max=500"`
	Contacts    *string `json:"contacts,omitempty" validate:"omitempty,max=500"`
}

// StudentResponse represents the response for student operations.
// Subscriptions is decoded from the persisted token string into plain ids.
type StudentResponse struct {
	ID            int64   `json:"id"`
	Fio           string  `json:"fio"`
	Email         string  `json:"email"`
	Course        int     `json:"course"`
	GroupNumber   int     `json:"group_number"`
	AboutSelf     string  `json:"about_self"`
	Tags          string  `json:"tags"`
	Contacts      string  `json:"contacts"`
	Status        bool    `json:"status"`
	TrackID       *int64  `json:"track_id,omitempty"`
	CurrentTeamID *int64  `json:"current_team_id,omitempty"`
	Captain       bool    `json:"captain"`
	Subscriptions []int64 `json:"subscriptions"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// Register creates a student on the current track of the given type. When a
// user account with the same email already exists, the student is linked to
// it and the account is marked registered.
func (s *StudentService) Register(trackType models.TrackType, req *RegisterStudentRequest) (*StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	track, err := s.trackSvc.CurrentByType(trackType)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Fio:         req.Fio,
		Email:       req.Email,
		Course:      req.Course,
		GroupNumber: req.GroupNumber,
		AboutSelf:   req.AboutSelf,
		Tags:        req.Tags,
		Contacts:    req.Contacts,
		TrackID:     &track.ID,
	}

	err = s.tx.Do(func(r *repository.Repositories) error {
		user, err := r.Users.GetByEmail(req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to look up user: %w", err)
		}
		if user != nil {
			student.UserID = &user.ID
		}

		if err := r.Students.Create(student); err != nil {
			return fmt.Errorf("failed to create student: %w", err)
		}

		if user != nil && !user.Registered {
			user.Registered = true
			if user.Fio == "" {
				user.Fio = req.Fio
			}
			if err := r.Users.Update(user); err != nil {
				return fmt.Errorf("failed to mark user registered: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toStudentResponse(student), nil
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(id int64) (*StudentResponse, error) {
	student, err := s.students.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return toStudentResponse(student), nil
}

// GetByEmail retrieves a student by email. A bare login without an "@" gets
// the configured university domain appended first.
func (s *StudentService) GetByEmail(login string) (*StudentResponse, error) {
	email := login
	if !strings.Contains(email, "@") {
		email = email + "@" + s.emailDomain
	}

	student, err := s.students.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return toStudentResponse(student), nil
}

// GetAll retrieves all students
func (s *StudentService) GetAll() ([]StudentResponse, error) {
	students, err := s.students.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return toStudentResponses(students), nil
}

// GetByCurrentTrack retrieves all students registered on the current track of the given type
func (s *StudentService) GetByCurrentTrack(trackType models.TrackType) ([]StudentResponse, error) {
	track, err := s.trackSvc.CurrentByType(trackType)
	if err != nil {
		return nil, err
	}

	students, err := s.students.GetByTrackID(track.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	return toStudentResponses(students), nil
}

// GetCaptains retrieves all team captains on the current track of the given type
func (s *StudentService) GetCaptains(trackType models.TrackType) ([]StudentResponse, error) {
	track, err := s.trackSvc.CurrentByType(trackType)
	if err != nil {
		return nil, err
	}

	captains, err := s.students.GetCaptainsByTrackID(track.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get captains: %w", err)
	}
	return toStudentResponses(captains), nil
}

// LikeSearch returns students matched by any space-separated token of the
// query, each taken as a literal substring of the student's serialized form.
// The match runs over the JSON form so every visible field participates
// without a per-field query.
func (s *StudentService) LikeSearch(like string) ([]StudentResponse, error) {
	students, err := s.students.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}

	tokens := strings.Fields(like)
	matched := make([]StudentResponse, 0)
	for i := range students {
		resp := toStudentResponse(&students[i])
		raw, err := json.Marshal(resp)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize student: %w", err)
		}
		if matchesAnyToken(string(raw), tokens) {
			matched = append(matched, *resp)
		}
	}
	return matched, nil
}

// matchesAnyToken reports whether any token is a literal, case-sensitive
// substring of the serialized row. An empty query matches everything.
func matchesAnyToken(serialized string, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if strings.Contains(serialized, token) {
			return true
		}
	}
	return false
}

// FindByStatusAndTrackID retrieves students on a track filtered by placement status
func (s *StudentService) FindByStatusAndTrackID(status bool, trackID int64) ([]StudentResponse, error) {
	if _, err := s.tracks.GetByID(trackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to verify track: %w", err)
	}

	students, err := s.students.FindByStatusAndTrackID(status, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to find students: %w", err)
	}
	return toStudentResponses(students), nil
}

// FindByTagAndTrackID retrieves students on a track whose tags contain the given tag
func (s *StudentService) FindByTagAndTrackID(tag string, trackID int64) ([]StudentResponse, error) {
	if _, err := s.tracks.GetByID(trackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrackNotFound
		}
		return nil, fmt.Errorf("failed to verify track: %w", err)
	}

	students, err := s.students.FindByTagAndTrackID(tag, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to find students: %w", err)
	}
	return toStudentResponses(students), nil
}

// GetSubscriptions retrieves the teams a student has applied to, in
// application order. Teams deleted since the application are skipped.
func (s *StudentService) GetSubscriptions(id int64) ([]TeamResponse, error) {
	student, err := s.students.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	teams := make([]TeamResponse, 0)
	for _, teamID := range selection.ParseIDs(student.Subscriptions) {
		team, err := s.teams.GetWithStudents(teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
		}
		teams = append(teams, *toTeamResponse(team))
	}
	return teams, nil
}

// Update applies a partial update to a student's own data
func (s *StudentService) Update(id int64, req *UpdateStudentRequest) (*StudentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	student, err := s.students.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if req.Fio != nil {
		student.Fio = *req.Fio
	}
	if req.Course != nil {
		student.Course = *req.Course
	}
	if req.GroupNumber != nil {
		student.GroupNumber = *req.GroupNumber
	}
	if req.AboutSelf != nil {
		student.AboutSelf = *req.AboutSelf
	}
	if req.Tags != nil {
		student.Tags = *req.Tags
	}
	if req.Contacts != nil {
		student.Contacts = *req.Contacts
	}

	if err := s.students.Update(student); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}
	return toStudentResponse(student), nil
}

// Delete removes a student. A placed student first leaves their team so the
// team's quantity and fullness stay consistent.
func (s *StudentService) Delete(id int64) error {
	return s.tx.Do(func(r *repository.Repositories) error {
		student, err := r.Students.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrStudentNotFound
			}
			return fmt.Errorf("failed to get student: %w", err)
		}

		if student.CurrentTeamID != nil {
			team, err := r.Teams.GetWithStudents(*student.CurrentTeamID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("failed to get team: %w", err)
			}
			if team != nil {
				maxConstraint := 0
				if team.CurrentTrackID != nil {
					track, err := r.Tracks.GetByID(*team.CurrentTrackID)
					if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("failed to get track: %w", err)
					}
					if track != nil {
						maxConstraint = track.MaxConstraint
					}
				}
				selection.Remove(student, team, maxConstraint)
				if err := r.Teams.Update(team); err != nil {
					return fmt.Errorf("failed to update team: %w", err)
				}
			}
		}

		if err := r.Students.Delete(id); err != nil {
			return fmt.Errorf("failed to delete student: %w", err)
		}
		return nil
	})
}

// toStudentResponse converts a student model to response
func toStudentResponse(student *models.Student) *StudentResponse {
	return &StudentResponse{
		ID:            student.ID,
		Fio:           student.Fio,
		Email:         student.Email,
		Course:        student.Course,
		GroupNumber:   student.GroupNumber,
		AboutSelf:     student.AboutSelf,
		Tags:          student.Tags,
		Contacts:      student.Contacts,
		Status:        student.Status,
		TrackID:       student.TrackID,
		CurrentTeamID: student.CurrentTeamID,
		Captain:       student.Captain,
		Subscriptions: selection.ParseIDs(student.Subscriptions),
		CreatedAt:     student.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     student.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toStudentResponses(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i := range students {
		responses[i] = *toStudentResponse(&students[i])
	}
	return responses
}
