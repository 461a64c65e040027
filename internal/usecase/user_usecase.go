package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UpdateProfileInput defines the mutable profile fields.
// Email is intentionally not updatable here; credential changes stay in the
// auth flows where the uniqueness constraint is handled.
type UpdateProfileInput struct {
	Name string `json:"name" validate:"required"`
}

// UserUsecase defines profile operations for an authenticated account.
type UserUsecase interface {
	// GetProfile returns the sanitized account data.
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserOutput, error)

	// UpdateProfile modifies the display name and returns the fresh view.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UserOutput, error)
}
