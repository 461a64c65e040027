// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"templateapi/internal/domain/entity"
	domainerrors "templateapi/internal/domain/errors"
	"templateapi/internal/domain/repository"
	"templateapi/internal/domain/service"
	"templateapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	signUpMessage         = "A new user has been created successfully. Enjoy your time on TemplateAPI!"
	passwordChangedMsg    = "Password changed successfully"
	forgotPasswordMessage = "If the email exists, a password reset link has been sent"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	tokenSvc service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

// SignUp orchestrates account registration: hash, then create. There is no
// existence pre-check; the store's unique index on email decides races and
// the repository translates the violation into a Conflict.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.MessageOutput, error) {
	srv.logger.Info("Starting user signup", "email", input.Email)

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during signup", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("signup failed")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.logger.Warn("Failed to create user", "email", input.Email, "error", err.Error())

		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("User signed up successfully", "userID", newUser.ID)

	return &usecase.MessageOutput{Message: signUpMessage}, nil
}

// SignIn verifies credentials and issues an access token.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.logger.Debug("Starting user signin", "email", input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("signin failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Signin rejected: password mismatch", "email", input.Email)

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("signin failed")
	}

	token, err := srv.tokenSvc.Issue(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.logger.Debug("User signed in successfully", "userID", user.ID)

	return &usecase.SignInOutput{AccessToken: token}, nil
}

// GetMe re-fetches the account by id so the caller always sees fresh data,
// even though the guard already resolved the identity for this request.
func (srv *authService) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account vanished between guard resolution and this call.
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get me failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserOutput(user), nil
}

// ChangePassword verifies the current password before persisting a new hash.
// Tokens issued before the change remain valid until they expire; there is
// no revocation mechanism.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) (*usecase.MessageOutput, error) {
	srv.logger.Info("Starting password change", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("change password failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.logger.Warn("Password change rejected: current password mismatch", "userID", userID)

		return nil, domainerrors.ErrInvalidCredentials.WithDetails("Current password is incorrect").WrapMessage("change password failed")
	}

	newHash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.logger.Error("Failed to hash new password", "error", err)

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("change password failed")
	}

	user.PasswordHash = newHash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.logger.Debug("Password changed successfully", "userID", userID)

	return &usecase.MessageOutput{Message: passwordChangedMsg}, nil
}

// ForgotPassword returns the same acknowledgement whether or not the email
// exists, to resist account enumeration. No reset token or email dispatch
// exists yet; the generic message is the whole contract.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (*usecase.MessageOutput, error) {
	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.logger.Error("Failed to look up email for password reset", "error", err)
		}
	}

	return &usecase.MessageOutput{Message: forgotPasswordMessage}, nil
}
