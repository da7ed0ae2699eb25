package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/patiponrmutl/SchoolMS/auth"
	"github.com/patiponrmutl/SchoolMS/models"
)

// UserKey is the echo context key the resolved user is stored under.
const UserKey = "auth.user"

// CurrentUser returns the identity attached by RequireAuth, or nil on an
// unauthenticated route.
func CurrentUser(c echo.Context) *models.User {
	u, _ := c.Get(UserKey).(*models.User)
	return u
}

func extractBearer(c echo.Context) (string, error) {
	h := c.Request().Header.Get("Authorization")
	if h == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "MISSING_AUTH_HEADER"})
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_AUTH_HEADER"})
	}
	return parts[1], nil
}

// RequireAuth verifies the bearer token and resolves it to a stored user,
// which it attaches to the request context. A store failure surfaces as
// 500, never 401: the caller's credentials were not at fault.
func RequireAuth(tokens *auth.Tokens, resolver *auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			claims, err := tokens.Verify(tok)
			if err != nil {
				code := "INVALID_TOKEN"
				if errors.Is(err, auth.ErrTokenExpired) {
					code = "TOKEN_EXPIRED"
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": code})
			}
			user, err := resolver.Resolve(claims)
			if err != nil {
				if errors.Is(err, auth.ErrStoreUnavailable) {
					return echo.NewHTTPError(http.StatusInternalServerError, map[string]any{"error": "STORE_UNAVAILABLE"})
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "USER_NOT_FOUND"})
			}
			c.Set(UserKey, user)
			return next(c)
		}
	}
}

// RequireAction gates a route on the permission table. Must run after
// RequireAuth.
func RequireAction(action auth.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := CurrentUser(c)
			if u == nil || !auth.Allowed(u.Role, action) {
				return echo.NewHTTPError(http.StatusForbidden, map[string]any{"error": "FORBIDDEN"})
			}
			return next(c)
		}
	}
}
