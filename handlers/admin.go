package handlers

import (
	"errors"
	"net/http"

	"purrfect/services/admin"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// AnalyticsSummaryHandler aggregates event counts over a date window.
func (hb *HandlerBundle) AnalyticsSummaryHandler(c *gin.Context) {
	summary, err := hb.AdminService.Summary(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		var vErr *admin.ValidationError
		if errors.As(err, &vErr) {
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to summarize analytics", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetAllUsersHandler returns every account on the platform.
func (hb *HandlerBundle) GetAllUsersHandler(c *gin.Context) {
	users, err := hb.AdminService.ListUsers(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users", err.Error())
		return
	}
	c.JSON(http.StatusOK, users)
}
