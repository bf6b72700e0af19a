package controller

import (
	"net/http"

	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// ListFriendRequests godoc
// @Summary List pending friend requests
// @Tags friend-requests
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.FriendRequestTarget
// @Router /friend-requests [get]
func GetListFriendRequestsFunc(srv service.FriendRequestTargetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		targets, err := srv.List(userId(c))
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, targets)
	}
}

// AddFriendRequests godoc
// @Summary Add pending friend requests
// @Tags friend-requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param targets body dto.FriendRequestTargets true "Phones"
// @Success 200 {object} dto.BulkResult
// @Router /friend-requests [post]
func GetAddFriendRequestsFunc(srv service.FriendRequestTargetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.FriendRequestTargets)
		if err := c.Bind(req); err != nil {
			return err
		}
		result, err := srv.Add(userId(c), req.Targets)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, result)
	}
}

// RemoveFriendRequest godoc
// @Summary Remove a pending friend request
// @Tags friend-requests
// @Security BearerAuth
// @Param phone query string true "Phone"
// @Success 204
// @Router /friend-requests [delete]
func GetRemoveFriendRequestFunc(srv service.FriendRequestTargetService) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := srv.Remove(userId(c), c.QueryParam("phone")); err != nil {
			return respondErr(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
