package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"templateapi/internal/domain/entity"
	"templateapi/internal/domain/repository"
	"templateapi/internal/domain/service"
	mockrepository "templateapi/internal/mocks/repository"
	mockservice "templateapi/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newGuardContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func validClaims(userID uuid.UUID, email string) *service.Claims {
	return &service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "user@example.com"}

	tokenSvc.On("Validate", "good-token").Return(validClaims(userID, user.Email), nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(user, nil)

	c, rec := newGuardContext(t, "Bearer good-token")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user, c.Get(ContextKeyUser))
	assert.Equal(t, userID, c.Get(ContextKeyUserID))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newGuardContext(t, "")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newGuardContext(t, "Basic dXNlcjpwYXNz")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	tokenSvc.AssertNotCalled(t, "Validate", mock.Anything)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	tokenSvc.On("Validate", "bad-token").Return(nil, jwt.ErrTokenSignatureInvalid)

	c, rec := newGuardContext(t, "Bearer bad-token")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthenticate_MalformedSubject(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	claims := &service.Claims{
		Email:            "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "not-a-uuid"},
	}
	tokenSvc.On("Validate", "odd-token").Return(claims, nil)

	c, rec := newGuardContext(t, "Bearer odd-token")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAuthenticate_DeletedAccountFailsClosed(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	userID := uuid.New()
	tokenSvc.On("Validate", "orphan-token").Return(validClaims(userID, "gone@example.com"), nil)
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	c, rec := newGuardContext(t, "Bearer orphan-token")

	require.NoError(t, guard.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_NeedsAuthenticatedIdentity(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userRepo := mockrepository.NewMockUserRepository(t)
	guard := NewAuthMiddleware(tokenSvc, userRepo)

	c, rec := newGuardContext(t, "")

	require.NoError(t, guard.RequireRole("admin")(okHandler)(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
