package handlers

import (
	"net/http"

	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// ListNotificationsHandler returns the caller's notifications, newest first.
func (hb *HandlerBundle) ListNotificationsHandler(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	notifications, err := hb.NotificationService.ListForUser(c.Request.Context(), c.GetString("userID"), unreadOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list notifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler marks one of the caller's notifications read.
func (hb *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	if err := hb.NotificationService.MarkRead(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "notification not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}
