package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// Register godoc
// @Summary Register
// @Description Creates a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.Register true "Account"
// @Success 201 {object} dto.User
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /auth/register [post]
func GetRegisterFunc(srv service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Register)
		if err := c.Bind(req); err != nil {
			return err
		}

		user, err := srv.Register(*req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, user)
	}
}

// Login godoc
// @Summary Login
// @Description Exchanges username and password for an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.Login true "Credentials"
// @Success 200 {object} dto.Tokens
// @Failure 401 {object} dto.Error
// @Failure 403 {object} dto.Error
// @Router /auth/login [post]
func GetLoginFunc(srv service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Login)
		if err := c.Bind(req); err != nil {
			return err
		}

		tokens, err := srv.Login(*req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, tokens)
	}
}

// Refresh godoc
// @Summary Refresh tokens
// @Description Rotates the refresh token, taken from the bearer header or the body
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.Refresh false "Refresh token"
// @Success 200 {object} dto.Tokens
// @Failure 401 {object} dto.Error
// @Router /auth/refresh [post]
func GetRefreshFunc(srv service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			req := new(dto.Refresh)
			if err := c.Bind(req); err != nil {
				return err
			}
			token = req.RefreshToken
		}

		tokens, err := srv.Refresh(token)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, tokens)
	}
}

// Logout godoc
// @Summary Logout
// @Description Revokes every refresh token of the caller
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func GetLogoutFunc(srv service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := srv.Logout(userId(c)); err != nil {
			return respondErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.User
// @Router /auth/me [get]
func GetMeFunc(srv service.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := srv.Me(userId(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, user)
	}
}
