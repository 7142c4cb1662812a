package service_test

import (
	"testing"
	"time"

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

// TrackServiceTestSuite defines the test suite for TrackService
type TrackServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockTracks   *mocks.MockTrackRepositoryInterface
	mockTeams    *mocks.MockTeamRepositoryInterface
	trackService *service.TrackService
}

// SetupTest sets up the test suite
func (suite *TrackServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTracks = mocks.NewMockTrackRepositoryInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)

	repos := &repository.Repositories{
		Users:    mocks.NewMockUserRepositoryInterface(suite.ctrl),
		Students: mocks.NewMockStudentRepositoryInterface(suite.ctrl),
		Teams:    suite.mockTeams,
		Tracks:   suite.mockTracks,
	}
	suite.trackService = service.NewTrackService(suite.mockTracks, &fakeTxManager{repos: repos}, validator.New())
}

// TearDownTest cleans up after each test
func (suite *TrackServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating a track with defaulted constraints
func (suite *TrackServiceTestSuite) TestCreate() {
	req := &service.CreateTrackRequest{Name: "ios autumn", Type: "bachelor"}

	suite.mockTracks.EXPECT().Create(gomock.Any()).DoAndReturn(func(track *models.Track) error {
		track.ID = 1
		return nil
	})

	track, err := suite.trackService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TrackTypeBachelor, track.Type)
	assert.Equal(suite.T(), 3, track.MinConstraint)
	assert.Equal(suite.T(), 5, track.MaxConstraint)
}

// TestCreateInvalidType tests creating a track with an unknown type
func (suite *TrackServiceTestSuite) TestCreateInvalidType() {
	req := &service.CreateTrackRequest{Name: "ios autumn", Type: "phd"}

	_, err := suite.trackService.Create(req)

	assert.Error(suite.T(), err)
}

// TestCreateEndBeforeStart tests rejecting a track whose dates are inverted
func (suite *TrackServiceTestSuite) TestCreateEndBeforeStart() {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	req := &service.CreateTrackRequest{Name: "ios autumn", Type: "bachelor", StartDate: &start, EndDate: &end}

	_, err := suite.trackService.Create(req)

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCurrentByType tests that the track with the latest start date wins
func (suite *TrackServiceTestSuite) TestCurrentByType() {
	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)
	lastMonth := now.AddDate(0, -1, 0)

	// repository returns newest start first
	tracks := []models.Track{
		{ID: 2, StartDate: &lastMonth, Type: models.TrackTypeBachelor},
		{ID: 1, StartDate: &lastYear, Type: models.TrackTypeBachelor},
	}
	suite.mockTracks.EXPECT().FindByType(models.TrackTypeBachelor).Return(tracks, nil)

	track, err := suite.trackService.CurrentByType(models.TrackTypeBachelor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), track.ID)
}

// TestCurrentByTypeFutureStart tests that a track scheduled ahead of the
// semester already counts as current
func (suite *TrackServiceTestSuite) TestCurrentByTypeFutureStart() {
	now := time.Now()
	lastYear := now.AddDate(-1, 0, 0)
	nextMonth := now.AddDate(0, 1, 0)

	tracks := []models.Track{
		{ID: 3, StartDate: &nextMonth, Type: models.TrackTypeBachelor},
		{ID: 1, StartDate: &lastYear, Type: models.TrackTypeBachelor},
	}
	suite.mockTracks.EXPECT().FindByType(models.TrackTypeBachelor).Return(tracks, nil)

	track, err := suite.trackService.CurrentByType(models.TrackTypeBachelor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), track.ID)
}

// TestCurrentByTypeNone tests the no-current-track case
func (suite *TrackServiceTestSuite) TestCurrentByTypeNone() {
	tracks := []models.Track{
		{ID: 3, Type: models.TrackTypeMaster}, // no start date set
		{ID: 4, Type: models.TrackTypeMaster},
	}
	suite.mockTracks.EXPECT().FindByType(models.TrackTypeMaster).Return(tracks, nil)

	_, err := suite.trackService.CurrentByType(models.TrackTypeMaster)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNoCurrentTrack)
}

// TestUpdate tests the partial update of a track
func (suite *TrackServiceTestSuite) TestUpdate() {
	track := &models.Track{ID: 1, Name: "ios autumn", MinConstraint: 3, MaxConstraint: 5}
	max := 6

	suite.mockTracks.EXPECT().GetByID(int64(1)).Return(track, nil)
	suite.mockTracks.EXPECT().Update(track).Return(nil)

	updated, err := suite.trackService.Update(1, &service.UpdateTrackRequest{MaxConstraint: &max})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6, updated.MaxConstraint)
	assert.Equal(suite.T(), "ios autumn", updated.Name)
}

// TestUpdateConstraintInversion tests rejecting max below min
func (suite *TrackServiceTestSuite) TestUpdateConstraintInversion() {
	track := &models.Track{ID: 1, MinConstraint: 3, MaxConstraint: 5}
	max := 2

	suite.mockTracks.EXPECT().GetByID(int64(1)).Return(track, nil)

	_, err := suite.trackService.Update(1, &service.UpdateTrackRequest{MaxConstraint: &max})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDelete tests that deleting a track detaches its teams first
func (suite *TrackServiceTestSuite) TestDelete() {
	trackID := int64(1)
	track := &models.Track{
		ID: trackID,
		CurrentTeams: []models.Team{
			{ID: 3, CurrentTrackID: &trackID},
			{ID: 4, CurrentTrackID: &trackID},
		},
	}

	suite.mockTracks.EXPECT().GetWithTeams(int64(1)).Return(track, nil)
	suite.mockTeams.EXPECT().Update(gomock.Any()).DoAndReturn(func(team *models.Team) error {
		assert.Nil(suite.T(), team.CurrentTrackID)
		return nil
	}).Times(2)
	suite.mockTracks.EXPECT().Delete(int64(1)).Return(nil)

	err := suite.trackService.Delete(1)

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound tests deleting a missing track
func (suite *TrackServiceTestSuite) TestDeleteNotFound() {
	suite.mockTracks.EXPECT().GetWithTeams(int64(99)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.trackService.Delete(99)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTrackNotFound)
}

// TestTrackServiceTestSuite runs the test suite
func TestTrackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TrackServiceTestSuite))
}
