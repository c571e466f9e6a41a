package handlers

import (
	"net/http"

	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// ListVetsHandler returns the veterinarian directory.
func (hb *HandlerBundle) ListVetsHandler(c *gin.Context) {
	vets, err := hb.VetService.ListVets(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list vets", err.Error())
		return
	}
	c.JSON(http.StatusOK, vets)
}
