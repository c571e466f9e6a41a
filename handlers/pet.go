package handlers

import (
	"errors"
	"net/http"

	"purrfect/models"
	"purrfect/services/pet"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

func petErrorStatus(err error) (int, string) {
	var vErr *pet.ValidationError
	var nErr *pet.NotFoundError
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest, vErr.Message
	case errors.As(err, &nErr):
		return http.StatusNotFound, nErr.Message
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

// CreatePetHandler adds a pet profile for the authenticated owner.
func (hb *HandlerBundle) CreatePetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.PetService.CreatePet(c.Request.Context(), c.GetString("userID"), p)
	if err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPetsHandler returns the authenticated owner's pets.
func (hb *HandlerBundle) ListPetsHandler(c *gin.Context) {
	pets, err := hb.PetService.ListPets(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list pets", err.Error())
		return
	}
	c.JSON(http.StatusOK, pets)
}

// GetPetHandler returns one pet, owner-scoped.
func (hb *HandlerBundle) GetPetHandler(c *gin.Context) {
	p, err := hb.PetService.GetPet(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdatePetHandler applies partial updates to a pet profile.
func (hb *HandlerBundle) UpdatePetHandler(c *gin.Context) {
	var p models.Pet
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	p.ID = c.Param("id")

	updated, err := hb.PetService.UpdatePet(c.Request.Context(), c.GetString("userID"), p)
	if err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePetHandler removes a pet profile, owner-scoped.
func (hb *HandlerBundle) DeletePetHandler(c *gin.Context) {
	if err := hb.PetService.DeletePet(c.Request.Context(), c.Param("id"), c.GetString("userID")); err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pet deleted"})
}

// GetHealthSummaryHandler returns the full health hub view for one pet.
func (hb *HandlerBundle) GetHealthSummaryHandler(c *gin.Context) {
	summary, err := hb.PetService.GetHealthSummary(c.Request.Context(), c.Param("id"), c.GetString("userID"))
	if err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AddHealthEntryHandler appends one entry to a pet's health data. The entry
// kind comes from the "kind" query or body field.
func (hb *HandlerBundle) AddHealthEntryHandler(c *gin.Context) {
	var body struct {
		Kind string `json:"kind"`
		pet.HealthEntryInput
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	kind := body.Kind
	if kind == "" {
		kind = c.Query("kind")
	}

	err := hb.PetService.AddHealthEntry(c.Request.Context(), c.Param("id"), c.GetString("userID"), kind, body.HealthEntryInput)
	if err != nil {
		status, msg := petErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "health entry added"})
}
