package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// StartQrLogin godoc
// @Summary Start QR login
// @Description Returns a QR image to scan with the Zalo app; poll the status until done
// @Tags qr-login
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param options body dto.QrStart false "Options"
// @Success 200 {object} dto.QrSession
// @Router /qr-login [post]
func GetStartQrLoginFunc(srv service.QrLoginService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.QrStart)
		if err := c.Bind(req); err != nil {
			return err
		}
		userAgent := req.UserAgent
		if userAgent == "" {
			userAgent = c.Request().UserAgent()
		}
		session, err := srv.Start(c.Request().Context(), userId(c), userAgent)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, session)
	}
}

// QrLoginStatus godoc
// @Summary QR login status
// @Tags qr-login
// @Security BearerAuth
// @Produce json
// @Param sessionId query string true "Session id"
// @Success 200 {object} dto.QrStatus
// @Failure 404 {object} dto.Error
// @Router /qr-login [get]
func GetQrLoginStatusFunc(srv service.QrLoginService) echo.HandlerFunc {
	return func(c echo.Context) error {
		status, err := srv.Status(userId(c), c.QueryParam("sessionId"))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, status)
	}
}
