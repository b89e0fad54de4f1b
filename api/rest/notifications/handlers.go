package notifications

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pbxops/server/internal/auth"
	apierrors "github.com/pbxops/server/internal/errors"
	"github.com/pbxops/server/internal/notifications"
)

// ListHandler godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum records to return (1-100, default 50)"
// @Success 200 {object} ListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/notifications [get]
// @Security BearerAuth
func ListHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		limit := 50
		if l := c.Query("limit"); l != "" {
			if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		notifs, err := svc.ListForUser(c.Request.Context(), userID, limit)
		if err != nil {
			apierrors.InternalError(c, "failed to fetch notifications", err)
			return
		}

		if notifs == nil {
			notifs = []notifications.Notification{}
		}

		unread, err := svc.GetUnreadCount(c.Request.Context(), userID)
		if err != nil {
			unread = 0
		}

		c.JSON(http.StatusOK, ListResponse{
			Success:       true,
			Notifications: notifs,
			UnreadCount:   unread,
		})
	}
}

// MarkReadHandler godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 401 {object} errors.ErrorResponse
// @Router /api/notifications/{id}/read [put]
// @Security BearerAuth
func MarkReadHandler(svc *notifications.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := auth.GetUserID(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			return
		}

		if err := svc.MarkRead(c.Request.Context(), userID, c.Param("id")); err != nil {
			apierrors.InternalError(c, "failed to mark notification as read", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
