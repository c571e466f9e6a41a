package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"purrfect/models"
	"purrfect/services/adoption"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

func adoptionErrorStatus(err error) (int, string) {
	var vErr *adoption.ValidationError
	var nErr *adoption.NotFoundError
	var cErr *adoption.ConflictError
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

// CreateListingHandler posts a pet for adoption.
func (hb *HandlerBundle) CreateListingHandler(c *gin.Context) {
	var l models.AdoptionListing
	if err := c.ShouldBindJSON(&l); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := hb.AdoptionService.CreateListing(c.Request.Context(), c.GetString("userID"), l)
	if err != nil {
		status, msg := adoptionErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// BrowseListingsHandler returns the paginated public adoption feed.
func (hb *HandlerBundle) BrowseListingsHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	minAge, _ := strconv.Atoi(c.Query("min_age"))
	maxAge, _ := strconv.Atoi(c.Query("max_age"))

	filter := models.ListingFilter{
		Species:      c.Query("species"),
		Breed:        c.Query("breed"),
		Size:         c.Query("size"),
		Location:     c.Query("location"),
		MinAge:       minAge,
		MaxAge:       maxAge,
		GoodWithKids: c.Query("good_with_kids") == "true",
		GoodWithPets: c.Query("good_with_pets") == "true",
		Page:         page,
		Limit:        limit,
	}

	pageResult, err := hb.AdoptionService.BrowseListings(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to browse listings", err.Error())
		return
	}
	c.JSON(http.StatusOK, pageResult)
}

// GetListingHandler returns one adoption listing.
func (hb *HandlerBundle) GetListingHandler(c *gin.Context) {
	l, err := hb.AdoptionService.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		status, msg := adoptionErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusOK, l)
}

// ApplyHandler submits an adoption application for a listing.
func (hb *HandlerBundle) ApplyHandler(c *gin.Context) {
	var body struct {
		Data map[string]any `json:"application_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	app, err := hb.AdoptionService.Apply(c.Request.Context(), c.GetString("userID"), c.Param("id"), body.Data)
	if err != nil {
		status, msg := adoptionErrorStatus(err)
		utils.JSONError(c, status, msg, "")
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMyApplicationsHandler returns applications the caller has submitted.
func (hb *HandlerBundle) ListMyApplicationsHandler(c *gin.Context) {
	apps, err := hb.AdoptionService.ListMyApplications(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list applications", err.Error())
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListReceivedApplicationsHandler returns applications for the caller's
// listings.
func (hb *HandlerBundle) ListReceivedApplicationsHandler(c *gin.Context) {
	apps, err := hb.AdoptionService.ListReceivedApplications(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list applications", err.Error())
		return
	}
	c.JSON(http.StatusOK, apps)
}
