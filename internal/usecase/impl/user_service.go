package impl

import (
	"context"
	"log/slog"

	domainerrors "templateapi/internal/domain/errors"
	"templateapi/internal/domain/repository"
	"templateapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile returns the sanitized account data for the given user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get profile failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return usecase.NewUserOutput(user), nil
}

// UpdateProfile changes the display name and returns the updated view.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update profile failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	user.Name = input.Name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.WithStack(err)
	}

	return usecase.NewUserOutput(user), nil
}
