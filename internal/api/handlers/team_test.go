package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sawwere/team-selection/internal/api/handlers"
	apperrors "github.com/sawwere/team-selection/internal/errors"
	"github.com/sawwere/team-selection/internal/mocks"
	"github.com/sawwere/team-selection/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)

	handler := handlers.NewTeamHandler(suite.mockService)
	suite.router = gin.New()
	suite.router.GET("/teams/all", handler.GetAllTeams)
	suite.router.GET("/teams/:id", handler.GetTeamByID)
	suite.router.GET("/teams/:id/candidates", handler.GetCandidates)
	suite.router.POST("/teams/create/:type", handler.CreateTeam)
	suite.router.PUT("/teams/:id/subscribe/:studentId", handler.Subscribe)
	suite.router.PUT("/teams/:id/approve/:studentId", handler.Approve)
	suite.router.PUT("/teams/:id/decline/:studentId", handler.Decline)
	suite.router.DELETE("/teams/:id/students/:studentId", handler.RemoveStudent)
	suite.router.DELETE("/teams/:id", handler.DeleteTeam)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetTeamByID tests retrieving a team
func (suite *TeamHandlerTestSuite) TestGetTeamByID() {
	suite.mockService.EXPECT().GetByID(int64(3)).Return(&service.TeamResponse{ID: 3, Name: "backend crew"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/3", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp service.TeamResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), "backend crew", resp.Name)
}

// TestGetTeamByIDNotFound tests the 404 mapping
func (suite *TeamHandlerTestSuite) TestGetTeamByIDNotFound() {
	suite.mockService.EXPECT().GetByID(int64(99)).Return(nil, apperrors.ErrTeamNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/99", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestGetTeamByIDInvalidID tests the id parsing guard
func (suite *TeamHandlerTestSuite) TestGetTeamByIDInvalidID() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/abc", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTeam tests creating a team
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	body := service.CreateTeamRequest{Name: "backend crew", CaptainID: 7}
	suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&service.TeamResponse{ID: 3, Name: "backend crew"}, nil)

	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/create/bachelor", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

// TestCreateTeamInvalidTrackType tests creating a team on an unknown track type
func (suite *TeamHandlerTestSuite) TestCreateTeamInvalidTrackType() {
	payload, _ := json.Marshal(service.CreateTeamRequest{Name: "backend crew", CaptainID: 7})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/teams/create/phd", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestSubscribe tests the application endpoint
func (suite *TeamHandlerTestSuite) TestSubscribe() {
	suite.mockService.EXPECT().Subscribe(int64(7), int64(3)).Return(&service.TeamResponse{ID: 3, Candidates: []int64{7}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/3/subscribe/7", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestSubscribeConflict tests the 409 mapping on a rejected transition
func (suite *TeamHandlerTestSuite) TestSubscribeConflict() {
	suite.mockService.EXPECT().Subscribe(int64(7), int64(3)).Return(nil, apperrors.ErrCannotAddStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/3/subscribe/7", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

// TestApprove tests accepting an applicant
func (suite *TeamHandlerTestSuite) TestApprove() {
	suite.mockService.EXPECT().Approve(int64(7), int64(3)).Return(&service.TeamResponse{ID: 3, QuantityOfStudents: 2}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/3/approve/7", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestDecline tests rejecting an applicant
func (suite *TeamHandlerTestSuite) TestDecline() {
	suite.mockService.EXPECT().Decline(int64(7), int64(3)).Return(&service.TeamResponse{ID: 3}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/teams/3/decline/7", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestRemoveStudent tests removing a member
func (suite *TeamHandlerTestSuite) TestRemoveStudent() {
	suite.mockService.EXPECT().RemoveStudent(int64(7), int64(3)).Return(&service.TeamResponse{ID: 3}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/teams/3/students/7", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestGetCandidates tests listing a team's applicants
func (suite *TeamHandlerTestSuite) TestGetCandidates() {
	suite.mockService.EXPECT().GetCandidates(int64(3)).Return([]service.StudentResponse{{ID: 7}, {ID: 8}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teams/3/candidates", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var resp []service.StudentResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp, 2)
}

// TestDeleteTeam tests deleting a team
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.mockService.EXPECT().Delete(int64(3)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/teams/3", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
