package testutils

import (
	"fmt"
	"time"

	"github.com/sawwere/team-selection/internal/database/models"
)

// TrackFactory provides methods to create test Track data
type TrackFactory struct{}

// NewTrackFactory creates a new TrackFactory
func NewTrackFactory() *TrackFactory {
	return &TrackFactory{}
}

// Create creates a test Track with default values
func (f *TrackFactory) Create() *models.Track {
	start := time.Now().AddDate(0, -1, 0)
	end := time.Now().AddDate(0, 3, 0)
	return &models.Track{
		Name:          "Test Track",
		About:         "A track for testing purposes",
		StartDate:     &start,
		EndDate:       &end,
		Type:          models.TrackTypeBachelor,
		MinConstraint: 3,
		MaxConstraint: 5,
	}
}

// WithType sets a custom track type
func (f *TrackFactory) WithType(trackType models.TrackType) *models.Track {
	track := f.Create()
	track.Type = trackType
	return track
}

// WithConstraints sets custom team size constraints
func (f *TrackFactory) WithConstraints(min, max int) *models.Track {
	track := f.Create()
	track.MinConstraint = min
	track.MaxConstraint = max
	return track
}

// WithStartDate sets a custom start date
func (f *TrackFactory) WithStartDate(start time.Time) *models.Track {
	track := f.Create()
	track.StartDate = &start
	return track
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Fio:   "Иванов Иван Иванович",
		Email: "ivanov@sfedu.ru",
		Role:  models.RoleUser,
	}
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom role
func (f *UserFactory) WithRole(role models.Role) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// StudentFactory provides methods to create test Student data
type StudentFactory struct {
	seq int
}

// NewStudentFactory creates a new StudentFactory
func NewStudentFactory() *StudentFactory {
	return &StudentFactory{}
}

// Create creates a test Student with a unique email
func (f *StudentFactory) Create() *models.Student {
	f.seq++
	return &models.Student{
		Fio:         fmt.Sprintf("Студент %d", f.seq),
		Email:       fmt.Sprintf("student%d@sfedu.ru", f.seq),
		Course:      3,
		GroupNumber: 5,
		AboutSelf:   "A student for testing purposes",
		Tags:        "Go SQL",
	}
}

// OnTrack places the student on the given track
func (f *StudentFactory) OnTrack(trackID int64) *models.Student {
	student := f.Create()
	student.TrackID = &trackID
	return student
}

// WithTags sets custom tags
func (f *StudentFactory) WithTags(tags string) *models.Student {
	student := f.Create()
	student.Tags = tags
	return student
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	f.seq++
	return &models.Team{
		Name:        fmt.Sprintf("Test Team %d", f.seq),
		About:       "A team for testing purposes",
		ProjectType: "web",
		Tags:        "Go SQL",
	}
}

// OnTrack places the team on the given track
func (f *TeamFactory) OnTrack(trackID int64) *models.Team {
	team := f.Create()
	team.CurrentTrackID = &trackID
	return team
}

// WithCaptain sets the captain id
func (f *TeamFactory) WithCaptain(captainID int64) *models.Team {
	team := f.Create()
	team.CaptainID = captainID
	return team
}

// FactorySet provides access to all factories
type FactorySet struct {
	Track   *TrackFactory
	User    *UserFactory
	Student *StudentFactory
	Team    *TeamFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Track:   NewTrackFactory(),
		User:    NewUserFactory(),
		Student: NewStudentFactory(),
		Team:    NewTeamFactory(),
	}
}
