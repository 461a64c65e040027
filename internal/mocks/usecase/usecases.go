// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"templateapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockAuthUsecase is a testify mock for usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock bound to the test's lifecycle.
func NewMockAuthUsecase(t mockConstructorTestingT) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.MessageOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.MessageOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.SignInOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	args := m.Called(ctx, userID)
	output, _ := args.Get(0).(*usecase.UserOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) (*usecase.MessageOutput, error) {
	args := m.Called(ctx, userID, input)
	output, _ := args.Get(0).(*usecase.MessageOutput)

	return output, args.Error(1)
}

func (m *MockAuthUsecase) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (*usecase.MessageOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*usecase.MessageOutput)

	return output, args.Error(1)
}

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

// NewMockUserUsecase creates a mock bound to the test's lifecycle.
func NewMockUserUsecase(t mockConstructorTestingT) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.UserOutput, error) {
	args := m.Called(ctx, userID)
	output, _ := args.Get(0).(*usecase.UserOutput)

	return output, args.Error(1)
}

func (m *MockUserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	args := m.Called(ctx, userID, input)
	output, _ := args.Get(0).(*usecase.UserOutput)

	return output, args.Error(1)
}
