package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"templateapi/internal/domain/entity"
	domainerrors "templateapi/internal/domain/errors"
	"templateapi/internal/domain/repository"
	mockRepo "templateapi/internal/mocks/repository"
	mockSvc "templateapi/internal/mocks/service"
	"templateapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service  usecase.AuthUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
	tokenSvc *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(userRepo, hasher, tokenSvc, logger)

	return authServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Email:    "a@b.com",
		Password: "pw123",
		Name:     "A",
	}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, input.Name, user.Name)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.SignUp(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.NotEmpty(t, output.Message)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "a@b.com", Password: "pw123", Name: "A"}

	fx.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fx.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists"))

	output, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrEmailAlreadyRegistered.HTTPCode(), appErr.HTTPCode())
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{Email: "a@b.com", Password: "pw123", Name: "A"}

	fx.hasher.On("Hash", input.Password).Return("", errors.New("resource exhausted"))

	output, err := fx.service.SignUp(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@b.com", PasswordHash: "stored_hash"}

	fx.userRepo.On("FindByEmail", ctx, "a@b.com").Return(user, nil)
	fx.hasher.On("Check", "pw123", "stored_hash").Return(true)
	fx.tokenSvc.On("Issue", userID, "a@b.com").Return("signed.jwt.token", nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "a@b.com", Password: "pw123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.userRepo.On("FindByEmail", ctx, "nobody@b.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "nobody@b.com", Password: "pw123"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "stored_hash"}

	fx.userRepo.On("FindByEmail", ctx, "a@b.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "stored_hash").Return(false)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "a@b.com", Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_GetMe_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@b.com", Name: "A", PasswordHash: "stored_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)

	output, err := fx.service.GetMe(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, output.ID)
	assert.Equal(t, "a@b.com", output.Email)
}

func TestAuthService_GetMe_AccountVanished(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetMe(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@b.com", PasswordHash: "old_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "old_pw", "old_hash").Return(true)
	fx.hasher.On("Hash", "new_pw").Return("new_hash", nil)
	fx.userRepo.On("Update", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(*entity.User)
			assert.Equal(t, "new_hash", updated.PasswordHash)
		}).
		Return(nil)

	output, err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "old_pw",
		NewPassword:     "new_pw",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, output.Message)
}

func TestAuthService_ChangePassword_WrongCurrentPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "a@b.com", PasswordHash: "old_hash"}

	fx.userRepo.On("FindByID", ctx, userID).Return(user, nil)
	fx.hasher.On("Check", "wrong", "old_hash").Return(false)

	output, err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new_pw",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	// No Update expectation: the stored hash must stay untouched.
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAuthService_ChangePassword_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "old_pw",
		NewPassword:     "new_pw",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_ForgotPassword_SameMessageForBothBranches(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "known@b.com"}

	fx.userRepo.On("FindByEmail", ctx, "known@b.com").Return(existing, nil)
	fx.userRepo.On("FindByEmail", ctx, "unknown@b.com").Return(nil, repository.ErrUserNotFound)

	knownOut, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "known@b.com"})
	require.NoError(t, err)

	unknownOut, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "unknown@b.com"})
	require.NoError(t, err)

	// Enumeration resistance: identical acknowledgement either way.
	assert.Equal(t, knownOut.Message, unknownOut.Message)
	assert.NotEmpty(t, knownOut.Message)
}
