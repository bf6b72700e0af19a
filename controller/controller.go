package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	principalKey  = "principal"
	malfunction   = "System malfunction. Please, try later"
	bearerPrefix  = "Bearer "
	tokenQueryKey = "access_token"
)

// respondErr writes {"error": msg} with the status matching the error type.
func respondErr(c echo.Context, err error) error {
	var (
		invalid   *service.InvalidPayloadErr
		last      *service.LastActiveCredentialErr
		authErr   *service.AuthErr
		forbidden *service.ForbiddenErr
		notFound  *service.NotFoundErr
		conflict  *service.ConflictErr
	)
	switch {
	case errors.As(err, &invalid), errors.As(err, &last):
		return c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.As(err, &authErr):
		return c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.As(err, &forbidden):
		return c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})
	case errors.As(err, &notFound):
		return c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	}

	zap.L().Error("Request failed", zap.String("method", c.Request().Method), zap.String("path", c.Path()), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, dto.Error{Error: malfunction})
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return ""
}

// GetAuthMiddleware rejects requests without a valid access token and stores the caller
// in the context. Browsers cannot set headers on EventSource, so the token may also come
// in the access_token query parameter.
func GetAuthMiddleware(srv service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				token = c.QueryParam(tokenQueryKey)
			}
			if token == "" {
				return c.JSON(http.StatusUnauthorized, dto.Error{Error: "Access token is required"})
			}

			principal, err := srv.Authenticate(token)
			if err != nil {
				return respondErr(c, err)
			}
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

func principal(c echo.Context) dto.Principal {
	p, _ := c.Get(principalKey).(dto.Principal)
	return p
}

func userId(c echo.Context) uint32 {
	return principal(c).UserId
}

// parseId reads an optional id; blank gives 0.
func parseId(name, value string) (uint32, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, service.NewInvalidPayloadError("Invalid " + name + " " + value)
	}
	return uint32(id), nil
}

// Health godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func GetHealthFunc() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
