package identity

import (
	"context"
	"testing"
	"time"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/crm/backend/internal/infrastructure/auth"
	"github.com/crm/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-auth-service-tests",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "crm-backend-test",
		MaxRefreshCount:        10,
	})
}

func newTestAuthService(userRepo *MockUserRepository) *AuthService {
	return NewAuthService(userRepo, newTestJWTService(), DefaultAuthServiceConfig(), zap.NewNop())
}

func TestAuthService_Login_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := service.Login(ctx, LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "manager", result.User.Role)
	assert.NotNil(t, user.LastLoginAt)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	mockRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

	_, err := service.Login(ctx, LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	_, err := service.Login(ctx, LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password1",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	// Same generic code as the unknown email case
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, 1, user.FailedAttempts)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_LocksAfterMaxAttempts(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := NewAuthService(mockRepo, newTestJWTService(), AuthServiceConfig{
		MaxLoginAttempts: 2,
		LockDuration:     15 * time.Minute,
	}, zap.NewNop())

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	req := LoginRequest{Email: "jane@example.com", Password: "wrong-password1"}

	_, err := service.Login(ctx, req)
	require.Error(t, err)

	_, err = service.Login(ctx, req)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	assert.True(t, user.IsLocked())
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()
	require.NoError(t, user.Deactivate())

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)

	_, err := service.Login(ctx, LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	login, err := service.Login(ctx, LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	result, err := service.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, user.ID, result.User.ID)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	_, err := service.RefreshToken(context.Background(), RefreshTokenRequest{RefreshToken: "garbage"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_RefreshToken_InactiveUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	login, err := service.Login(ctx, LoginRequest{
		Email:    "jane@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, user.Deactivate())

	_, err = service.RefreshToken(ctx, RefreshTokenRequest{RefreshToken: login.RefreshToken})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	result, err := service.GetCurrentUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Email, result.Email)
	assert.Equal(t, "manager", result.Role)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	mockRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

	err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "password123",
		NewPassword: "newpassword456",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("newpassword456"))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	ctx := context.Background()
	user := createTestUser()

	mockRepo.On("FindByID", ctx, user.ID).Return(user, nil)

	err := service.ChangePassword(ctx, user.ID, ChangePasswordRequest{
		OldPassword: "not-the-password1",
		NewPassword: "newpassword456",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_PASSWORD", domainErr.Code)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := newTestAuthService(mockRepo)

	user := createTestUser()

	assert.NoError(t, service.Logout(context.Background(), user.ID))
}
