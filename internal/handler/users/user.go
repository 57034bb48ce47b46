package users

import (
	"context"
	"errors"
	"net/http"

	"recipe-app/internal/api"
	"recipe-app/internal/cache"
	"recipe-app/internal/database"
	"recipe-app/internal/middleware"
	"recipe-app/internal/model"
	"recipe-app/internal/service"
	"recipe-app/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

var (
	createUser      = service.CreateUser
	setPassword     = service.SetPassword
	forgetPrincipal = service.ForgetPrincipal
	getUserByID     = store.GetUserByID
	updateUser      = store.UpdateUser
	withTx          = database.WithTx
)

const duplicateEmailMessage = "user with this email already exists."

func toUserResponse(u *model.User) api.UserResponse {
	return api.UserResponse{Email: u.Email, Name: u.Name}
}

func internalError(c echo.Context, err error, msg string) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(msg)
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
}

func passwordTooLong() api.ErrorResponse {
	return api.FieldError("password", "Ensure this field has no more than 72 bytes.")
}

// @Summary     Create a new user
// @Description 建立新帳號，Email 會整串轉為小寫
// @Tags        user
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.UserRequest true "使用者資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /user/create/ [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body", Code: api.CodeInvalid})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationError(err))
		}

		user, err := createUser(c.Request().Context(), db, service.NewUser{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return c.JSON(http.StatusBadRequest, api.FieldError("email", duplicateEmailMessage))
		case errors.Is(err, service.ErrPasswordTooLong):
			return c.JSON(http.StatusBadRequest, passwordTooLong())
		case err != nil:
			return internalError(c, err, "create user")
		}

		return c.JSON(http.StatusCreated, toUserResponse(user))
	}
}

// @Summary     Get my profile
// @Tags        user
// @Produce     json
// @Success     200 {object} api.UserResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    TokenAuth
// @Router      /user/me/ [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication credentials were not provided."})
		}
		user, err := getUserByID(c.Request().Context(), db, p.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid token."})
			}
			return internalError(c, err, "get me")
		}
		return c.JSON(http.StatusOK, toUserResponse(user))
	}
}

// profileChanges 是要套用到目前使用者的欄位，nil 代表不變
type profileChanges struct {
	email    *string
	name     *string
	password *string
}

// @Summary     Partially update my profile
// @Description 只更新有提供的欄位；密碼會重新雜湊
// @Tags        user
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.PatchUserRequest true "要更新的欄位"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Security    TokenAuth
// @Router      /user/me/ [patch]
func PatchMeHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.PatchUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body", Code: api.CodeInvalid})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationError(err))
		}
		return applyProfileChanges(c, db, cch, profileChanges{
			email:    req.Email,
			name:     req.Name,
			password: req.Password,
		})
	}
}

// @Summary     Replace my profile
// @Description email、name、password 皆為必填
// @Tags        user
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.UserRequest true "完整個人資料"
// @Success     200  {object} api.UserResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Security    TokenAuth
// @Router      /user/me/ [put]
func PutMeHandler(db database.DB, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body", Code: api.CodeInvalid})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationError(err))
		}
		return applyProfileChanges(c, db, cch, profileChanges{
			email:    &req.Email,
			name:     &req.Name,
			password: &req.Password,
		})
	}
}

// applyProfileChanges writes profile fields and the password in one
// transaction, then drops the cached principal of the calling token.
func applyProfileChanges(c echo.Context, db database.DB, cch cache.Cache, ch profileChanges) error {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication credentials were not provided."})
	}
	ctx := c.Request().Context()

	var user *model.User
	err := withTx(ctx, db, func(q database.Querier) error {
		var err error
		user, err = getUserByID(ctx, q, p.UserID)
		if err != nil {
			return err
		}
		if ch.email != nil || ch.name != nil {
			if ch.email != nil {
				user.Email = service.NormalizeEmail(*ch.email)
			}
			if ch.name != nil {
				user.Name = *ch.name
			}
			if err := updateUser(ctx, q, user); err != nil {
				return err
			}
		}
		if ch.password != nil {
			return setPassword(ctx, q, user.ID, *ch.password)
		}
		return nil
	})
	switch {
	case errors.Is(err, store.ErrDuplicate):
		return c.JSON(http.StatusBadRequest, api.FieldError("email", duplicateEmailMessage))
	case errors.Is(err, service.ErrPasswordTooLong):
		return c.JSON(http.StatusBadRequest, passwordTooLong())
	case errors.Is(err, store.ErrNotFound):
		return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Invalid token."})
	case err != nil:
		return internalError(c, err, "update me")
	}

	forget(ctx, cch, p.TokenKey)
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func forget(ctx context.Context, cch cache.Cache, tokenKey string) {
	if err := forgetPrincipal(ctx, cch, tokenKey); err != nil {
		log.Warn().Err(err).Msg("drop cached principal")
	}
}
