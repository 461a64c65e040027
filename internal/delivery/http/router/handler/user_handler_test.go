package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"templateapi/internal/delivery/http/middleware"
	mockusecase "templateapi/internal/mocks/usecase"
	"templateapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserHandler_GetProfile(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.On("GetProfile", mock.Anything, userID).Return(&usecase.UserOutput{
		ID:        userID,
		Email:     "user@example.com",
		Name:      "User",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/user/profile", "")
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_GetProfile_MissingIdentity(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	c, rec := newTestContext(t, http.MethodGet, "/user/profile", "")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	userID := uuid.New()
	uc.On("UpdateProfile", mock.Anything, userID, &usecase.UpdateProfileInput{
		Name: "Renamed",
	}).Return(&usecase.UserOutput{
		ID:    userID,
		Email: "user@example.com",
		Name:  "Renamed",
	}, nil)

	c, rec := newTestContext(t, http.MethodPatch, "/user/profile", `{"name":"Renamed"}`)
	c.Set(middleware.ContextKeyUserID, userID)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Renamed")
}

func TestUserHandler_UpdateProfile_EmptyName(t *testing.T) {
	uc := mockusecase.NewMockUserUsecase(t)
	h := NewUserHandler(uc, slog.Default())

	c, _ := newTestContext(t, http.MethodPatch, "/user/profile", `{"name":""}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.UpdateProfile(c)
	require.Error(t, err)
	uc.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}
