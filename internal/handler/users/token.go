package users

import (
	"context"
	"errors"
	"net/http"
	"time"

	"recipe-app/internal/api"
	"recipe-app/internal/cache"
	"recipe-app/internal/database"
	"recipe-app/internal/service"
	"recipe-app/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	authenticate  = service.Authenticate
	obtainToken   = service.ObtainToken
	warmPrincipal = service.WarmPrincipal
)

// TokenConfig controls issued tokens and the principal cache entry warmed
// after issuing.
type TokenConfig struct {
	TTL               time.Duration
	PrincipalCacheTTL time.Duration
}

// @Summary     Obtain an auth token
// @Description 以 email 與密碼換取 token。同一使用者重複取得時沿用同一個 token 紀錄
// @Tags        user
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.AuthTokenRequest true "登入資料"
// @Success     200  {object} api.AuthTokenResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     429  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /user/token/ [post]
func CreateTokenHandler(db database.DB, cch cache.Cache, wp worker.Pool, cfg TokenConfig) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.AuthTokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body", Code: api.CodeInvalid})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationError(err))
		}

		ctx := c.Request().Context()
		user, err := authenticate(ctx, db, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				return c.JSON(http.StatusBadRequest, api.AuthenticationError())
			}
			return internalError(c, err, "authenticate")
		}

		token, key, err := obtainToken(ctx, db, *user, cfg.TTL)
		if err != nil {
			return internalError(c, err, "obtain token")
		}

		queued := wp.Submit(func(ctx context.Context) {
			if err := warmPrincipal(ctx, db, cch, key, cfg.PrincipalCacheTTL); err != nil {
				log.Warn().Err(err).Int("user_id", user.ID).Msg("warm principal cache")
			}
		})
		if !queued {
			log.Debug().Int("user_id", user.ID).Msg("principal warm-up skipped, worker queue full")
		}

		return c.JSON(http.StatusOK, api.AuthTokenResponse{Token: token})
	}
}
