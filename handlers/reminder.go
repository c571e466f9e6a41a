package handlers

import (
	"errors"
	"net/http"

	"purrfect/services/reminder"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// CreateReminderHandler schedules a pet-care reminder for the caller.
func (hb *HandlerBundle) CreateReminderHandler(c *gin.Context) {
	var req reminder.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	rem, err := hb.ReminderService.Create(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		var vErr *reminder.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create reminder", err.Error())
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// ListRemindersHandler returns the caller's reminders, optionally filtered by
// type and a due-before cutoff.
func (hb *HandlerBundle) ListRemindersHandler(c *gin.Context) {
	reminders, err := hb.ReminderService.List(c.Request.Context(), c.GetString("userID"), c.Query("type"), c.Query("due_before"))
	if err != nil {
		var vErr *reminder.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, reminders)
}
