package middleware

import (
	"net/http"
	"strings"

	"templateapi/internal/domain/entity"
	"templateapi/internal/domain/repository"
	"templateapi/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys under which the guard stores the resolved identity.
const (
	ContextKeyUser   = "user"
	ContextKeyUserID = "userID"
)

// AuthMiddleware is the access guard: it validates the bearer token and
// resolves the claimed subject to a live account before any handler runs.
// Routes not wrapped by Authenticate are public.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the JWT access token and attaches the resolved
// account to the request context. It aborts with 401 before the handler on
// any failure: missing or malformed header, bad signature, expiry, or a
// subject that no longer exists. The per-request store lookup trades a round
// trip for freshness: a deleted account is rejected on its very next request
// even though its token is still cryptographically valid.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID format in token"})
		}

		// Resolve the subject to a live account. A valid token whose subject
		// was deleted fails closed here.
		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account no longer exists"})
		}

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyUserID, user.ID)

		return next(c)
	}
}

// RequireRole is a middleware factory reserved for role-based authorization.
// It must be used AFTER the Authenticate middleware. The account model has no
// role field yet, so no role is enforced; this is an extension point.
func (m *AuthMiddleware) RequireRole(_ string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(ContextKeyUser).(*entity.User); !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
			}

			return next(c)
		}
	}
}
