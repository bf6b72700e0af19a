package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// ListCredentials godoc
// @Summary List Zalo credentials
// @Tags credentials
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.Credential
// @Router /credentials [get]
func GetListCredentialsFunc(srv service.CredentialService) echo.HandlerFunc {
	return func(c echo.Context) error {
		creds, err := srv.List(userId(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, creds)
	}
}

// CreateCredential godoc
// @Summary Create Zalo credential
// @Description The cookie may be a raw header, a list of name/value pairs or an object with a cookies list. The new credential becomes the active one.
// @Tags credentials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param credential body dto.CredentialInput true "Credential"
// @Success 201 {object} dto.Credential
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /credentials [post]
func GetCreateCredentialFunc(srv service.CredentialService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.CredentialInput)
		if err := c.Bind(req); err != nil {
			return err
		}
		cred, err := srv.Create(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, cred)
	}
}

// UpdateCredential godoc
// @Summary Update Zalo credential
// @Tags credentials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param credential body dto.CredentialInput true "Credential with id"
// @Success 200 {object} dto.Credential
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /credentials [put]
func GetUpdateCredentialFunc(srv service.CredentialService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.CredentialInput)
		if err := c.Bind(req); err != nil {
			return err
		}
		cred, err := srv.Update(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, cred)
	}
}

// ActivateCredential godoc
// @Summary Activate Zalo credential
// @Tags credentials
// @Security BearerAuth
// @Produce json
// @Param id path int true "Credential id"
// @Success 200 {object} dto.Credential
// @Failure 404 {object} dto.Error
// @Router /credentials/{id}/activate [post]
func GetActivateCredentialFunc(srv service.CredentialService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId("id", c.Param("id"))
		if err != nil {
			return respondErr(c, err)
		}
		cred, err := srv.Activate(userId(c), id)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, cred)
	}
}

// DeleteCredential godoc
// @Summary Delete Zalo credential
// @Description Archives the credential, or removes it with hard=true. The last live credential cannot be deleted.
// @Tags credentials
// @Security BearerAuth
// @Param id query int true "Credential id"
// @Param hard query bool false "Remove instead of archive"
// @Success 204
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /credentials [delete]
func GetDeleteCredentialFunc(srv service.CredentialService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId("id", c.QueryParam("id"))
		if err != nil {
			return respondErr(c, err)
		}
		if err = srv.Delete(userId(c), id, c.QueryParam("hard") == "true"); err != nil {
			return respondErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
