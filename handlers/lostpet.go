package handlers

import (
	"errors"
	"net/http"

	"purrfect/models"
	"purrfect/services/lostpet"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// ReportLostPetHandler files a public lost-pet report.
func (hb *HandlerBundle) ReportLostPetHandler(c *gin.Context) {
	var lp models.LostPet
	if err := c.ShouldBindJSON(&lp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.LostPetService.Report(c.Request.Context(), c.GetString("userID"), lp)
	if err != nil {
		var vErr *lostpet.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to file report", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLostPetsHandler returns the public lost-pet board, filtered by status.
func (hb *HandlerBundle) ListLostPetsHandler(c *gin.Context) {
	reports, err := hb.LostPetService.ListReports(c.Request.Context(), c.Query("status"))
	if err != nil {
		var vErr *lostpet.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reports", err.Error())
		return
	}
	c.JSON(http.StatusOK, reports)
}

// MarkLostPetFoundHandler closes the caller's report.
func (hb *HandlerBundle) MarkLostPetFoundHandler(c *gin.Context) {
	err := hb.LostPetService.MarkFound(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		var nErr *lostpet.NotFoundError
		if errors.As(err, &nErr) {
			utils.JSONError(c, http.StatusNotFound, nErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update report", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "report marked as found"})
}
