package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// ListTemplates godoc
// @Summary List templates
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.Template
// @Router /templates [get]
func GetListTemplatesFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		templates, err := srv.List(userId(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, templates)
	}
}

// GetTemplate godoc
// @Summary Get template
// @Tags templates
// @Security BearerAuth
// @Produce json
// @Param id path int true "Template id"
// @Success 200 {object} dto.Template
// @Failure 404 {object} dto.Error
// @Router /templates/{id} [get]
func GetTemplateFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId("id", c.Param("id"))
		if err != nil {
			return respondErr(c, err)
		}
		tpl, err := srv.Get(userId(c), id)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, tpl)
	}
}

// CreateTemplate godoc
// @Summary Create template
// @Description Variables are detected from the content
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param template body dto.Template true "Template"
// @Success 201 {object} dto.Template
// @Failure 400 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /templates [post]
func GetCreateTemplateFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Template)
		if err := c.Bind(req); err != nil {
			return err
		}
		tpl, err := srv.Create(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusCreated, tpl)
	}
}

// UpdateTemplate godoc
// @Summary Update template
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param template body dto.Template true "Template with id"
// @Success 200 {object} dto.Template
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /templates [put]
func GetUpdateTemplateFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Template)
		if err := c.Bind(req); err != nil {
			return err
		}
		tpl, err := srv.Update(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, tpl)
	}
}

// DeleteTemplate godoc
// @Summary Delete template
// @Tags templates
// @Security BearerAuth
// @Param id query int true "Template id"
// @Success 204
// @Failure 404 {object} dto.Error
// @Router /templates [delete]
func GetDeleteTemplateFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId("id", c.QueryParam("id"))
		if err == nil && id == 0 {
			err = service.NewInvalidPayloadError("Template id is required")
		}
		if err != nil {
			return respondErr(c, err)
		}
		if err = srv.Delete(userId(c), id); err != nil {
			return respondErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// PreviewTemplate godoc
// @Summary Preview message
// @Description Renders a stored template or raw content with a recipient's fields
// @Tags templates
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param preview body dto.Preview true "Preview"
// @Success 200 {object} dto.PreviewResult
// @Router /templates/preview [post]
func GetPreviewTemplateFunc(srv service.TemplateService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Preview)
		if err := c.Bind(req); err != nil {
			return err
		}
		preview, err := srv.Preview(userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, preview)
	}
}
