package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// ListRecipients godoc
// @Summary List recipients
// @Tags recipients
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.Recipient
// @Router /recipients [get]
func GetListRecipientsFunc(srv service.RecipientService) echo.HandlerFunc {
	return func(c echo.Context) error {
		recipients, err := srv.List(userId(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, recipients)
	}
}

// UpsertRecipients godoc
// @Summary Upsert recipients
// @Description Creates or overwrites recipients by phone; every item succeeds or fails on its own
// @Tags recipients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param recipients body dto.Recipients true "Recipients"
// @Success 200 {object} dto.BulkResult
// @Router /recipients [post]
func GetUpsertRecipientsFunc(srv service.RecipientService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Recipients)
		if err := c.Bind(req); err != nil {
			return err
		}
		result, err := srv.BulkUpsert(userId(c), req.DataList)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

// UpdateRecipient godoc
// @Summary Update recipient
// @Tags recipients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param recipient body dto.Recipient true "Recipient with id"
// @Success 200 {object} dto.Recipient
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /recipients [put]
func GetUpdateRecipientFunc(srv service.RecipientService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Recipient)
		if err := c.Bind(req); err != nil {
			return err
		}
		rec, err := srv.Update(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, rec)
	}
}

// DeleteRecipient godoc
// @Summary Delete recipient
// @Description Archives the recipient, or purges it with hard=true
// @Tags recipients
// @Security BearerAuth
// @Param id query int false "Recipient id"
// @Param phone query string false "Recipient phone"
// @Param hard query bool false "Purge instead of archive"
// @Success 204
// @Failure 404 {object} dto.Error
// @Router /recipients [delete]
func GetDeleteRecipientFunc(srv service.RecipientService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId("id", c.QueryParam("id"))
		if err != nil {
			return respondErr(c, err)
		}
		hard := c.QueryParam("hard") == "true"
		if err = srv.Delete(userId(c), id, c.QueryParam("phone"), hard); err != nil {
			return respondErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
