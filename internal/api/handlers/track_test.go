package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sawwere/team-selection/internal/api/handlers"
	"github.com/sawwere/team-selection/internal/database/models"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/mocks"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrackHandlerTestSuite defines the test suite for TrackHandler
type TrackHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTrackServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TrackHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTrackServiceInterface(suite.ctrl)

	handler := handlers.NewTrackHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/tracks/all", handler.GetAllTracks)
	suite.router.GET("/tracks/current", handler.GetCurrentTrack)
	suite.router.GET("/tracks/:id", handler.GetTrackByID)
	suite.router.POST("/tracks", handler.CreateTrack)
	suite.router.PUT("/tracks/:id", handler.UpdateTrack)
	suite.router.DELETE("/tracks/:id", handler.DeleteTrack)
}

// TearDownTest cleans up after each test
func (suite *TrackHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTrack tests creating a track
func (suite *TrackHandlerTestSuite) TestCreateTrack() {
	suite.mockService.EXPECT().
		Create(gomock.Any()).
		Return(&models.Track{ID: 1, Name: "ios autumn", Type: models.TrackTypeBachelor, MinConstraint: 3, MaxConstraint: 5}, nil)

	payload, _ := json.Marshal(service.CreateTrackRequest{Name: "ios autumn", Type: "bachelor"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tracks", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestGetCurrentTrack tests resolving the current track
func (suite *TrackHandlerTestSuite) TestGetCurrentTrack() {
	suite.mockService.EXPECT().
		CurrentByType(models.TrackTypeMaster).
		Return(&models.Track{ID: 2, Type: models.TrackTypeMaster}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracks/current?type=master", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetCurrentTrackNone tests the 404 mapping when no track is current
func (suite *TrackHandlerTestSuite) TestGetCurrentTrackNone() {
	suite.mockService.EXPECT().
		CurrentByType(models.TrackTypeBachelor).
		Return(nil, apperrors.ErrNoCurrentTrack)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracks/current?type=bachelor", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetTrackByID tests retrieving a track
func (suite *TrackHandlerTestSuite) TestGetTrackByID() {
	suite.mockService.EXPECT().GetByID(int64(1)).Return(&models.Track{ID: 1, Name: "ios autumn"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tracks/1", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "ios autumn")
}

// TestDeleteTrack tests deleting a track
func (suite *TrackHandlerTestSuite) TestDeleteTrack() {
	suite.mockService.EXPECT().Delete(int64(1)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/tracks/1", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestTrackHandlerTestSuite runs the test suite
func TestTrackHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrackHandlerTestSuite))
}
