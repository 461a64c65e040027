// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"templateapi/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput carries the current and replacement passwords.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// ForgotPasswordInput identifies the account requesting a reset.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// MessageOutput is a non-sensitive confirmation returned by write flows.
type MessageOutput struct {
	Message string `json:"message"`
}

// SignInOutput returns the issued bearer token after a successful sign-in.
type SignInOutput struct {
	AccessToken string `json:"access_token"`
}

// UserOutput is the sanitized account view returned to callers.
// It deliberately has no password field of any kind.
type UserOutput struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserOutput maps a domain User to its sanitized external view.
func NewUserOutput(user *entity.User) *UserOutput {
	if user == nil {
		return nil
	}

	return &UserOutput{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// SignUp registers a new account. A duplicate email surfaces as a Conflict
	// raised by the store's uniqueness constraint. No token is issued.
	SignUp(ctx context.Context, input *SignUpInput) (*MessageOutput, error)

	// SignIn verifies credentials and issues a bearer token.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// GetMe re-fetches the account for an already-authenticated caller.
	GetMe(ctx context.Context, userID uuid.UUID) (*UserOutput, error)

	// ChangePassword replaces the stored hash after verifying the current
	// password. Outstanding tokens remain valid until expiry.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) (*MessageOutput, error)

	// ForgotPassword acknowledges a reset request without revealing whether
	// the email is registered.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*MessageOutput, error)
}
