package service_test

import (
	"testing"

	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/mocks"
	"github.com/sawwere/team-selection/internal/repository"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// StudentServiceTestSuite defines the test suite for StudentService
type StudentServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockStudents   *mocks.MockStudentRepositoryInterface
	mockUsers      *mocks.MockUserRepositoryInterface
	mockTeams      *mocks.MockTeamRepositoryInterface
	mockTracks     *mocks.MockTrackRepositoryInterface
	mockTrackSvc   *mocks.MockTrackServiceInterface
	studentService *service.StudentService
}

// SetupTest sets up the test suite
func (suite *StudentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStudents = mocks.NewMockStudentRepositoryInterface(suite.ctrl)
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockTracks = mocks.NewMockTrackRepositoryInterface(suite.ctrl)
	suite.mockTrackSvc = mocks.NewMockTrackServiceInterface(suite.ctrl)

	repos := &repository.Repositories{
		Users:    suite.mockUsers,
		Students: suite.mockStudents,
		Teams:    suite.mockTeams,
		Tracks:   suite.mockTracks,
	}
	suite.studentService = service.NewStudentService(
		repos, suite.mockTrackSvc, &fakeTxManager{repos: repos}, validator.New(), "sfedu.ru",
	)
}

// TearDownTest cleans up after each test
func (suite *StudentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func registerRequest() *service.RegisterStudentRequest {
	return &service.RegisterStudentRequest{
		Fio:         "Иванов Иван Иванович",
		Email:       "ivanov@sfedu.ru",
		Course:      3,
		GroupNumber: 5,
		AboutSelf:   "backend developer",
		Tags:        "Java SQL",
		Contacts:    "@ivanov",
	}
}

// TestRegister tests registering a student and linking the user account
func (suite *StudentServiceTestSuite) TestRegister() {
	track := &models.Track{ID: 1, Type: models.TrackTypeBachelor}
	user := &models.User{ID: 10, Email: "ivanov@sfedu.ru"}

	suite.mockTrackSvc.EXPECT().CurrentByType(models.TrackTypeBachelor).Return(track, nil)
	suite.mockUsers.EXPECT().GetByEmail("ivanov@sfedu.ru").Return(user, nil)
	suite.mockStudents.EXPECT().Create(gomock.Any()).DoAndReturn(func(student *models.Student) error {
		student.ID = 7
		return nil
	})
	suite.mockUsers.EXPECT().Update(user).DoAndReturn(func(u *models.User) error {
		assert.True(suite.T(), u.Registered)
		return nil
	})

	resp, err := suite.studentService.Register(models.TrackTypeBachelor, registerRequest())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), resp.ID)
	assert.NotNil(suite.T(), resp.TrackID)
	assert.Equal(suite.T(), int64(1), *resp.TrackID)
	assert.False(suite.T(), resp.Status)
}

// TestRegisterWithoutUserAccount tests registering when no account exists yet
func (suite *StudentServiceTestSuite) TestRegisterWithoutUserAccount() {
	track := &models.Track{ID: 1, Type: models.TrackTypeBachelor}

	suite.mockTrackSvc.EXPECT().CurrentByType(models.TrackTypeBachelor).Return(track, nil)
	suite.mockUsers.EXPECT().GetByEmail("ivanov@sfedu.ru").Return(nil, gorm.ErrRecordNotFound)
	suite.mockStudents.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.studentService.Register(models.TrackTypeBachelor, registerRequest())

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), resp.CurrentTeamID)
}

// TestRegisterValidationError tests registering with a bad payload
func (suite *StudentServiceTestSuite) TestRegisterValidationError() {
	req := registerRequest()
	req.Email = "not-an-email"

	_, err := suite.studentService.Register(models.TrackTypeBachelor, req)

	assert.Error(suite.T(), err)
}

// TestRegisterNoCurrentTrack tests registering with no active track
func (suite *StudentServiceTestSuite) TestRegisterNoCurrentTrack() {
	suite.mockTrackSvc.EXPECT().CurrentByType(models.TrackTypeMaster).Return(nil, apperrors.ErrNoCurrentTrack)

	_, err := suite.studentService.Register(models.TrackTypeMaster, registerRequest())

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoCurrentTrack)
}

// TestGetByEmailAppendsDomain tests that a bare login gets the university domain
func (suite *StudentServiceTestSuite) TestGetByEmailAppendsDomain() {
	student := &models.Student{ID: 7, Email: "ivanov@sfedu.ru"}

	suite.mockStudents.EXPECT().GetByEmail("ivanov@sfedu.ru").Return(student, nil)

	resp, err := suite.studentService.GetByEmail("ivanov")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ivanov@sfedu.ru", resp.Email)
}

// TestGetByEmailFullAddress tests that a full address is used untouched
func (suite *StudentServiceTestSuite) TestGetByEmailFullAddress() {
	suite.mockStudents.EXPECT().GetByEmail("petrov@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.studentService.GetByEmail("petrov@example.com")

	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

// TestLikeSearch tests the token search over serialized students
func (suite *StudentServiceTestSuite) TestLikeSearch() {
	students := []models.Student{
		{ID: 1, Fio: "Иванов Иван", Tags: "Java"},
		{ID: 2, Fio: "Петров Пётр", Tags: "Python ML"},
	}
	suite.mockStudents.EXPECT().GetAll().Return(students, nil)

	matched, err := suite.studentService.LikeSearch("Python")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 1)
	assert.Equal(suite.T(), int64(2), matched[0].ID)
}

// TestLikeSearchUnionOfTokens tests that the query tokens combine with OR:
// a student matching any one token is kept
func (suite *StudentServiceTestSuite) TestLikeSearchUnionOfTokens() {
	students := []models.Student{
		{ID: 1, Fio: "Иванов Иван", Tags: "Java"},
		{ID: 2, Fio: "Петров Пётр", Tags: "Python ML"},
		{ID: 3, Fio: "Сидоров Семён", Tags: "Go"},
	}
	suite.mockStudents.EXPECT().GetAll().Return(students, nil)

	matched, err := suite.studentService.LikeSearch("Иван Python")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), matched, 2)
	assert.Equal(suite.T(), int64(1), matched[0].ID)
	assert.Equal(suite.T(), int64(2), matched[1].ID)
}

// TestLikeSearchCaseSensitive tests that tokens match literally
func (suite *StudentServiceTestSuite) TestLikeSearchCaseSensitive() {
	students := []models.Student{
		{ID: 1, Fio: "Иванов Иван", Tags: "Java"},
	}
	suite.mockStudents.EXPECT().GetAll().Return(students, nil)

	matched, err := suite.studentService.LikeSearch("java")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), matched)
}

// TestGetSubscriptions tests listing applied-to teams in application order
func (suite *StudentServiceTestSuite) TestGetSubscriptions() {
	student := &models.Student{ID: 7, Subscriptions: "3 9 "}

	suite.mockStudents.EXPECT().GetByID(int64(7)).Return(student, nil)
	suite.mockTeams.EXPECT().GetWithStudents(int64(3)).Return(&models.Team{ID: 3, Name: "backend crew"}, nil)
	suite.mockTeams.EXPECT().GetWithStudents(int64(9)).Return(nil, gorm.ErrRecordNotFound)

	teams, err := suite.studentService.GetSubscriptions(7)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), teams, 1)
	assert.Equal(suite.T(), int64(3), teams[0].ID)
}

// TestGetCaptains tests listing captains of the current track
func (suite *StudentServiceTestSuite) TestGetCaptains() {
	track := &models.Track{ID: 1, Type: models.TrackTypeBachelor}

	suite.mockTrackSvc.EXPECT().CurrentByType(models.TrackTypeBachelor).Return(track, nil)
	suite.mockStudents.EXPECT().GetCaptainsByTrackID(int64(1)).Return([]models.Student{{ID: 7, Captain: true}}, nil)

	captains, err := suite.studentService.GetCaptains(models.TrackTypeBachelor)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), captains, 1)
	assert.True(suite.T(), captains[0].Captain)
}

// TestUpdate tests the partial update of a student's own data
func (suite *StudentServiceTestSuite) TestUpdate() {
	student := &models.Student{ID: 7, Fio: "Иванов Иван", Course: 2}
	about := "ml engineer"

	suite.mockStudents.EXPECT().GetByID(int64(7)).Return(student, nil)
	suite.mockStudents.EXPECT().Update(student).Return(nil)

	resp, err := suite.studentService.Update(7, &service.UpdateStudentRequest{AboutSelf: &about})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "ml engineer", resp.AboutSelf)
	assert.Equal(suite.T(), "Иванов Иван", resp.Fio)
	assert.Equal(suite.T(), 2, resp.Course)
}

// TestDeletePlacedStudent tests that deleting a placed student releases the seat
func (suite *StudentServiceTestSuite) TestDeletePlacedStudent() {
	teamID := int64(3)
	trackID := int64(1)
	student := &models.Student{ID: 7, Status: true, CurrentTeamID: &teamID}
	team := &models.Team{
		ID: 3, QuantityOfStudents: 5, FullFlag: true, CurrentTrackID: &trackID,
		Students: []models.Student{{ID: 7}, {ID: 8}},
	}

	suite.mockStudents.EXPECT().GetByID(int64(7)).Return(student, nil)
	suite.mockTeams.EXPECT().GetWithStudents(int64(3)).Return(team, nil)
	suite.mockTracks.EXPECT().GetByID(int64(1)).Return(&models.Track{ID: 1, MaxConstraint: 5}, nil)
	suite.mockTeams.EXPECT().Update(team).Return(nil)
	suite.mockStudents.EXPECT().Delete(int64(7)).Return(nil)

	err := suite.studentService.Delete(7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 4, team.QuantityOfStudents)
	assert.False(suite.T(), team.FullFlag)
}

// TestDeleteUnplacedStudent tests deleting a student with no team
func (suite *StudentServiceTestSuite) TestDeleteUnplacedStudent() {
	student := &models.Student{ID: 7}

	suite.mockStudents.EXPECT().GetByID(int64(7)).Return(student, nil)
	suite.mockStudents.EXPECT().Delete(int64(7)).Return(nil)

	err := suite.studentService.Delete(7)

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound tests deleting a missing student
func (suite *StudentServiceTestSuite) TestDeleteNotFound() {
	suite.mockStudents.EXPECT().GetByID(int64(7)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.studentService.Delete(7)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStudentNotFound)
}

// TestStudentServiceTestSuite runs the test suite
func TestStudentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StudentServiceTestSuite))
}
