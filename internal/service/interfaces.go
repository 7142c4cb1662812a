package service

import (
	"github.com/sawwere/team-selection/internal/database/models"

	"github.com/xuri/excelize/v2"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// StudentServiceInterface defines the interface for student service
type StudentServiceInterface interface {
	Register(trackType models.TrackType, req *RegisterStudentRequest) (*StudentResponse, error)
	GetByID(id int64) (*StudentResponse, error)
	GetByEmail(login string) (*StudentResponse, error)
	GetAll() ([]StudentResponse, error)
	GetByCurrentTrack(trackType models.TrackType) ([]StudentResponse, error)
	GetCaptains(trackType models.TrackType) ([]StudentResponse, error)
	LikeSearch(like string) ([]StudentResponse, error)
	FindByStatusAndTrackID(status bool, trackID int64) ([]StudentResponse, error)
	FindByTagAndTrackID(tag string, trackID int64) ([]StudentResponse, error)
	GetSubscriptions(id int64) ([]TeamResponse, error)
	Update(id int64, req *UpdateStudentRequest) (*StudentResponse, error)
	Delete(id int64) error
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(trackType models.TrackType, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id int64) (*TeamResponse, error)
	GetAll() ([]TeamResponse, error)
	LikeSearch(like string) ([]TeamResponse, error)
	Subscribe(studentID, teamID int64) (*TeamResponse, error)
	Approve(studentID, teamID int64) (*TeamResponse, error)
	Decline(studentID, teamID int64) (*TeamResponse, error)
	RemoveStudent(studentID, teamID int64) (*TeamResponse, error)
	Update(id int64, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(id int64) error
	FindByTagAndTrackID(tag string, trackID int64) ([]TeamResponse, error)
	FindByFullFlagAndTrackID(fullFlag bool, trackID int64) ([]TeamResponse, error)
	GetCandidates(id int64) ([]StudentResponse, error)
}

// TrackServiceInterface defines the interface for track service
type TrackServiceInterface interface {
	Create(req *CreateTrackRequest) (*models.Track, error)
	GetByID(id int64) (*models.Track, error)
	GetAll() ([]models.Track, error)
	Update(id int64, req *UpdateTrackRequest) (*models.Track, error)
	Delete(id int64) error
	CurrentByType(trackType models.TrackType) (*models.Track, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	GetByEmail(email string) (*models.User, error)
	EnsureUser(email, fio string) (*models.User, error)
	GiveRole(req *GiveRoleRequest) (*models.User, error)
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	ExcelForTrack(trackID int64) (*excelize.File, error)
}
