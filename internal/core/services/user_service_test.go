package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/eggkhata/egg_khata_app/internal/apperrors"
	"github.com/eggkhata/egg_khata_app/internal/core/domain"
	portssvc "github.com/eggkhata/egg_khata_app/internal/core/ports/services"
	"github.com/eggkhata/egg_khata_app/internal/core/services"
	"github.com/eggkhata/egg_khata_app/internal/dto"
	"github.com/eggkhata/egg_khata_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{
		Username: "ramesh",
		Password: "super-secret-pw",
		Name:     "Ramesh",
	}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal("ramesh", user.Username)
	suite.Equal(domain.ProviderLocal, user.AuthProvider)
	suite.NotEqual(req.Password, user.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "ramesh"}

	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(existing, nil).Once()

	user, err := suite.service.RegisterUser(ctx, dto.RegisterUserRequest{Username: "ramesh", Password: "super-secret-pw", Name: "R"})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("super-secret-pw")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       uuid.NewString(),
		Username:     "ramesh",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ramesh", "super-secret-pw")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("super-secret-pw")
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Username: "ramesh", PasswordHash: hash, AuthProvider: domain.ProviderLocal}
	suite.mockRepo.On("FindUserByUsername", ctx, "ramesh").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ramesh", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserMapsToUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever-pw")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and wrong password look identical to the caller.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_GoogleOnlyAccount() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Username: "g@example.com", AuthProvider: domain.ProviderGoogle}

	suite.mockRepo.On("FindUserByUsername", ctx, "g@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "g@example.com", "any-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_ExistingUser() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), AuthProvider: domain.ProviderGoogle, ProviderUserID: "google-123"}

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-123").Return(existing, nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, &domain.GoogleUserInfo{ID: "google-123", Email: "g@example.com"})

	suite.Require().NoError(err)
	suite.Equal(existing.UserID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestFindOrCreateGoogleUser_FirstSignIn() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "google-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-123" &&
			u.Username == "g@example.com"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateGoogleUser(ctx, &domain.GoogleUserInfo{ID: "google-123", Email: "g@example.com", Name: "G"})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestClearUserRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("UpdateRefreshToken", ctx, userID, "", (*time.Time)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ClearUserRefreshToken(ctx, userID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
