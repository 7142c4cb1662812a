package repository

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

import (
	"github.com/sawwere/team-selection/internal/database/models"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}

// StudentRepositoryInterface defines the contract for student repository operations
type StudentRepositoryInterface interface {
	Create(student *models.Student) error
	GetByID(id int64) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	GetByUserID(userID int64) (*models.Student, error)
	GetAll() ([]models.Student, error)
	GetByTrackID(trackID int64) ([]models.Student, error)
	GetCaptainsByTrackID(trackID int64) ([]models.Student, error)
	FindByStatusAndTrackID(status bool, trackID int64) ([]models.Student, error)
	FindByTagAndTrackID(tag string, trackID int64) ([]models.Student, error)
	Update(student *models.Student) error
	Delete(id int64) error
}

// TeamRepositoryInterface defines the contract for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id int64) (*models.Team, error)
	GetWithStudents(id int64) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetByTrackID(trackID int64) ([]models.Team, error)
	FindByTagAndTrackID(tag string, trackID int64) ([]models.Team, error)
	FindByFullFlagAndTrackID(fullFlag bool, trackID int64) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id int64) error
}

// TrackRepositoryInterface defines the contract for track repository operations
type TrackRepositoryInterface interface {
	Create(track *models.Track) error
	GetByID(id int64) (*models.Track, error)
	GetWithTeams(id int64) (*models.Track, error)
	GetAll() ([]models.Track, error)
	FindByType(trackType models.TrackType) ([]models.Track, error)
	Update(track *models.Track) error
	Delete(id int64) error
}
