package handlers

import (
	"errors"
	"net/http"

	"purrfect/models"
	"purrfect/services/booking"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

func bookingErrorStatus(err error) (int, string) {
	var vErr *booking.ValidationError
	var nErr *booking.NotFoundError
	var cErr *booking.ConflictError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.As(err, &nErr):
		return http.StatusNotFound, nErr.Message
	case errors.As(err, &cErr):
		return http.StatusConflict, cErr.Message
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// BookAppointmentHandler reserves a slot and creates the appointment.
func (hb *HandlerBundle) BookAppointmentHandler(c *gin.Context) {
	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	booked, err := hb.BookingService.BookAppointment(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		status, msg := bookingErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, booked)
}

// ListSlotsHandler returns a vet's slots for a date.
func (hb *HandlerBundle) ListSlotsHandler(c *gin.Context) {
	slots, err := hb.BookingService.ListSlots(c.Request.Context(), c.Query("vet_id"), c.Query("date"))
	if err != nil {
		status, msg := bookingErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// SetupSlotsHandler creates the authenticated vet's bookable windows for a
// date.
func (hb *HandlerBundle) SetupSlotsHandler(c *gin.Context) {
	var req models.SetupSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	// Vets may only create slots for themselves.
	req.VetID = c.GetString("userID")

	ids, err := hb.BookingService.SetupSlots(c.Request.Context(), req)
	if err != nil {
		status, msg := bookingErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"slot_ids": ids})
}

// ListMyAppointmentsHandler returns appointments for the caller: across all
// their pets for owners, or their schedule for vets.
func (hb *HandlerBundle) ListMyAppointmentsHandler(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("userID")

	var appts []models.Appointment
	var err error
	if c.GetString("userRole") == models.RoleVet {
		appts, err = hb.BookingService.ListAppointmentsForVet(ctx, userID)
	} else {
		appts, err = hb.BookingService.ListAppointmentsForOwner(ctx, userID)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, appts)
}
