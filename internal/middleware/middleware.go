package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"recipe-app/internal/cache"
	"recipe-app/internal/database"
	"recipe-app/internal/model"
	"recipe-app/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const (
	// ContextUserKey holds the *model.Principal of the request.
	ContextUserKey = "user"
	// ContextClaimsKey holds the verified *service.CustomClaims.
	ContextClaimsKey = "claims"
)

var (
	verifyAccessToken = service.VerifyAccessToken
	resolvePrincipal  = service.ResolvePrincipal
)

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="api"`)
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

// extractClaims 接受 "Bearer <jwt>" 或 "Token <jwt>" 兩種格式
func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, unauthorized(c, "Authentication credentials were not provided.")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" ||
		!(strings.EqualFold(parts[0], "bearer") || strings.EqualFold(parts[0], "token")) {
		return nil, unauthorized(c, "Invalid authorization header format.")
	}
	claims, err := verifyAccessToken(strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			return nil, unauthorized(c, "Invalid token.")
		}
		log.Error().Err(err).Msg("verify access token")
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return claims, nil
}

// RequireAuth verifies the access token and resolves it to a live principal.
// Tokens whose record was removed, or whose user is inactive, are rejected.
func RequireAuth(db database.DB, cch cache.Cache, principalTTL time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c)
			if err != nil {
				return err
			}
			p, err := resolvePrincipal(c.Request().Context(), db, cch, claims, principalTTL)
			if err != nil {
				if errors.Is(err, service.ErrInvalidToken) {
					return unauthorized(c, "Invalid token.")
				}
				log.Error().Err(err).Int("user_id", claims.UserID).Msg("resolve principal")
				return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
			}
			c.Set(ContextUserKey, p)
			c.Set(ContextClaimsKey, claims)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal stored by RequireAuth.
func PrincipalFrom(c echo.Context) (*model.Principal, bool) {
	p, ok := c.Get(ContextUserKey).(*model.Principal)
	return p, ok && p != nil
}

// ClaimsFrom returns the claims stored by RequireAuth.
func ClaimsFrom(c echo.Context) (*service.CustomClaims, bool) {
	cl, ok := c.Get(ContextClaimsKey).(*service.CustomClaims)
	return cl, ok && cl != nil
}
