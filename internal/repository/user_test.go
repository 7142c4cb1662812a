//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/sawwere/team-selection/internal/database/models"
	"github.com/sawwere/team-selection/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a user account
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotZero(user.ID)
	suite.Equal(models.RoleUser, user.Role)
	suite.False(user.Registered)
}

// TestCreateDuplicateEmail tests the unique email constraint
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	dup := suite.factories.User.Create()
	err := suite.repo.Create(dup)

	suite.Error(err)
}

// TestGetByEmail tests fetching an account by email
func (suite *UserRepositoryTestSuite) TestGetByEmail() {
	user := suite.factories.User.WithEmail("petrov@sfedu.ru")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("petrov@sfedu.ru")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestGetByEmailNotFound tests fetching a missing account
func (suite *UserRepositoryTestSuite) TestGetByEmailNotFound() {
	_, err := suite.repo.GetByEmail("ghost@sfedu.ru")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpdateRole tests promoting an account
func (suite *UserRepositoryTestSuite) TestUpdateRole() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	user.Role = models.RoleAdministrator
	user.Registered = true
	suite.NoError(suite.repo.Update(user))

	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.RoleAdministrator, found.Role)
	suite.True(found.Registered)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
