package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dilshat/zalo-sender/sender"
	"github.com/dilshat/zalo-sender/service"
	"github.com/dilshat/zalo-sender/service/dto"
	"github.com/labstack/echo/v4"
)

// SendMessages godoc
// @Summary Send messages
// @Description Runs a paced send job and answers when it is done or stopped. Per-item failures are reported in results.
// @Tags messaging
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job body dto.Send true "Send job"
// @Success 200 {object} dto.SendReport
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Router /messaging/send [post]
func GetSendFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Send)
		if err := c.Bind(req); err != nil {
			return err
		}
		report, err := srv.Send(c.Request().Context(), userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, report)
	}
}

// SendFriendRequests godoc
// @Summary Send friend requests
// @Description Same as send, but sends friend requests; without a selection the pending friend requests are used
// @Tags messaging
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param job body dto.Send true "Send job"
// @Success 200 {object} dto.SendReport
// @Router /messaging/send-friend-request [post]
func GetSendFriendRequestsFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Send)
		if err := c.Bind(req); err != nil {
			return err
		}
		report, err := srv.SendFriendRequests(c.Request().Context(), userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, report)
	}
}

// StopSending godoc
// @Summary Stop a send job
// @Description Items already sent stay sent; the rest are skipped
// @Tags messaging
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param stop body dto.Stop true "Session"
// @Success 200 {object} dto.Stopped
// @Router /messaging/stop [post]
func GetStopFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.Stop)
		if err := c.Bind(req); err != nil {
			return err
		}
		stopped, err := srv.Stop(c.Request().Context(), userId(c), req.SessionId)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, stopped)
	}
}

// FindContact godoc
// @Summary Find Zalo contact by phone
// @Tags messaging
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param query body dto.FindContact true "Phone"
// @Success 200 {object} dto.Contact
// @Failure 404 {object} dto.Error
// @Router /messaging/find-contact [post]
func GetFindContactFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(dto.FindContact)
		if err := c.Bind(req); err != nil {
			return err
		}
		contact, err := srv.FindContact(c.Request().Context(), userId(c), *req)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, contact)
	}
}

// Friends godoc
// @Summary List Zalo friends
// @Tags messaging
// @Security BearerAuth
// @Produce json
// @Param credentialId query int false "Credential id, the active one by default"
// @Success 200 {array} dto.Contact
// @Router /messaging/friends [get]
func GetFriendsFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		credId, err := parseId("credentialId", c.QueryParam("credentialId"))
		if err != nil {
			return respondErr(c, err)
		}
		friends, err := srv.Friends(c.Request().Context(), userId(c), credId)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, friends)
	}
}

// Groups godoc
// @Summary List Zalo groups
// @Tags messaging
// @Security BearerAuth
// @Produce json
// @Param credentialId query int false "Credential id, the active one by default"
// @Success 200 {array} dto.Group
// @Router /messaging/groups [get]
func GetGroupsFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		credId, err := parseId("credentialId", c.QueryParam("credentialId"))
		if err != nil {
			return respondErr(c, err)
		}
		groups, err := srv.Groups(c.Request().Context(), userId(c), credId)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, groups)
	}
}

// SendLogs godoc
// @Summary List send logs
// @Tags messaging
// @Security BearerAuth
// @Produce json
// @Param sessionId query string false "Session id"
// @Param limit query int false "Max entries"
// @Success 200 {array} dto.SendLog
// @Router /messaging/logs [get]
func GetLogsFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		logs, err := srv.Logs(userId(c), c.QueryParam("sessionId"), limit)
		if err != nil {
			return respondErr(c, err)
		}
		return c.JSON(http.StatusOK, logs)
	}
}

// Progress godoc
// @Summary Stream send progress
// @Description Server-sent events for one session: tick, item_succeeded, item_failed and job_done
// @Tags messaging
// @Security BearerAuth
// @Produce text/event-stream
// @Param sessionId path string true "Session id"
// @Success 200 {object} sender.Event
// @Router /messaging/progress/{sessionId} [get]
func GetProgressFunc(srv service.MessagingService) echo.HandlerFunc {
	return func(c echo.Context) error {
		sub, err := srv.Subscribe(userId(c), c.Param("sessionId"))
		if err != nil {
			return respondErr(c, err)
		}
		defer sub.Close()

		res := c.Response()
		res.Header().Set(echo.HeaderContentType, "text/event-stream")
		res.Header().Set("Cache-Control", "no-cache")
		res.Header().Set("Connection", "keep-alive")
		res.WriteHeader(http.StatusOK)
		res.Flush()

		for {
			select {
			case <-c.Request().Context().Done():
				return nil
			case msg, ok := <-sub.Events():
				if !ok {
					return nil
				}
				ev, ok := msg.(sender.Event)
				if !ok {
					continue
				}
				data, err := json.Marshal(ev)
				if err != nil {
					return err
				}
				if _, err = fmt.Fprintf(res, "event: %s\ndata: %s\n\n", ev.Kind, data); err != nil {
					return nil
				}
				res.Flush()
			}
		}
	}
}
