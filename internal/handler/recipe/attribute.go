// Package recipe serves the per-user recipe attributes (tags, ingredients).
package recipe

import (
	"net/http"

	"recipe-app/internal/api"
	"recipe-app/internal/database"
	"recipe-app/internal/middleware"
	"recipe-app/internal/model"
	"recipe-app/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func unauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Authentication credentials were not provided."})
}

// ListAttributesHandler returns the caller's rows of attrs, name descending.
// @Summary     List my tags or ingredients
// @Tags        recipe
// @Produce     json
// @Success     200 {array}  api.AttributeResponse
// @Failure     401 {object} api.ErrorResponse
// @Security    TokenAuth
// @Router      /recipe/tags/ [get]
// @Router      /recipe/ingredients/ [get]
func ListAttributesHandler(db database.DB, attrs store.AttributeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return unauthenticated(c)
		}
		list, err := attrs.ListByOwner(c.Request().Context(), db, p.UserID)
		if err != nil {
			log.Error().Err(err).Int("user_id", p.UserID).Msg("list attributes")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
		}

		resp := make([]api.AttributeResponse, 0, len(list))
		for _, a := range list {
			resp = append(resp, api.AttributeResponse{ID: a.ID, Name: a.Name})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// CreateAttributeHandler stores a new row owned by the caller.
// @Summary     Create a tag or ingredient
// @Description 名稱前後空白會被移除，擁有者一律為目前使用者
// @Tags        recipe
// @Accept      json,x-www-form-urlencoded
// @Produce     json
// @Param       body body     api.AttributeRequest true "名稱"
// @Success     201  {object} api.AttributeResponse
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Security    TokenAuth
// @Router      /recipe/tags/ [post]
// @Router      /recipe/ingredients/ [post]
func CreateAttributeHandler(db database.DB, attrs store.AttributeStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := middleware.PrincipalFrom(c)
		if !ok {
			return unauthenticated(c)
		}

		var req api.AttributeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body", Code: api.CodeInvalid})
		}
		req.Normalize()
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ValidationError(err))
		}

		a := &model.Attribute{UserID: p.UserID, Name: req.Name}
		if err := attrs.Create(c.Request().Context(), db, a); err != nil {
			log.Error().Err(err).Int("user_id", p.UserID).Msg("create attribute")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "internal error"})
		}
		return c.JSON(http.StatusCreated, api.AttributeResponse{ID: a.ID, Name: a.Name})
	}
}
