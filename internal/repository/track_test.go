//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TrackRepositoryTestSuite tests the TrackRepository
type TrackRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TrackRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TrackRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTrackRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TrackRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TrackRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TrackRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a track
func (suite *TrackRepositoryTestSuite) TestCreate() {
	track := suite.factories.Track.Create()

	err := suite.repo.Create(track)

	suite.NoError(err)
	suite.NotZero(track.ID)
	suite.NotZero(track.CreatedAt)
}

// TestGetByID tests fetching a track by id
func (suite *TrackRepositoryTestSuite) TestGetByID() {
	track := suite.factories.Track.Create()
	suite.NoError(suite.repo.Create(track))

	found, err := suite.repo.GetByID(track.ID)

	suite.NoError(err)
	suite.Equal(track.Name, found.Name)
	suite.Equal(models.TrackTypeBachelor, found.Type)
}

// TestGetByIDNotFound tests fetching a missing track
func (suite *TrackRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(99999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestFindByTypeOrdersByStartDate tests that newest started tracks come first
func (suite *TrackRepositoryTestSuite) TestFindByTypeOrdersByStartDate() {
	older := suite.factories.Track.WithStartDate(time.Now().AddDate(-1, 0, 0))
	newer := suite.factories.Track.WithStartDate(time.Now().AddDate(0, -1, 0))
	master := suite.factories.Track.WithType(models.TrackTypeMaster)
	suite.NoError(suite.repo.Create(older))
	suite.NoError(suite.repo.Create(newer))
	suite.NoError(suite.repo.Create(master))

	tracks, err := suite.repo.FindByType(models.TrackTypeBachelor)

	suite.NoError(err)
	suite.Len(tracks, 2)
	suite.Equal(newer.ID, tracks[0].ID)
	suite.Equal(older.ID, tracks[1].ID)
}

// TestGetWithTeams tests preloading teams and their members
func (suite *TrackRepositoryTestSuite) TestGetWithTeams() {
	track := suite.factories.Track.Create()
	suite.NoError(suite.repo.Create(track))

	team := suite.factories.Team.OnTrack(track.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	student := suite.factories.Student.OnTrack(track.ID)
	student.CurrentTeamID = &team.ID
	student.Status = true
	suite.NoError(suite.baseTestSuite.DB.Create(student).Error)

	found, err := suite.repo.GetWithTeams(track.ID)

	suite.NoError(err)
	suite.Len(found.CurrentTeams, 1)
	suite.Len(found.CurrentTeams[0].Students, 1)
}

// TestUpdate tests updating a track
func (suite *TrackRepositoryTestSuite) TestUpdate() {
	track := suite.factories.Track.Create()
	suite.NoError(suite.repo.Create(track))

	track.MaxConstraint = 7
	suite.NoError(suite.repo.Update(track))

	found, err := suite.repo.GetByID(track.ID)
	suite.NoError(err)
	suite.Equal(7, found.MaxConstraint)
}

// TestDelete tests deleting a track
func (suite *TrackRepositoryTestSuite) TestDelete() {
	track := suite.factories.Track.Create()
	suite.NoError(suite.repo.Create(track))

	suite.NoError(suite.repo.Delete(track.ID))

	_, err := suite.repo.GetByID(track.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTrackRepositoryTestSuite runs the test suite
func TestTrackRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TrackRepositoryTestSuite))
}
