package handlers

import (
	"errors"
	"net/http"

	"purrfect/services/user"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// RegisterHandler creates a new account and returns the user with a token.
func (hb *HandlerBundle) RegisterHandler(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := hb.UserService.Register(c.Request.Context(), req)
	if err != nil {
		var vErr *user.ValidationError
		var cErr *user.ConflictError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
		case errors.As(err, &cErr):
			utils.JSONError(c, http.StatusConflict, cErr.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "registration failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler verifies credentials and returns the user with a token.
func (hb *HandlerBundle) LoginHandler(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := hb.UserService.Login(c.Request.Context(), req)
	if err != nil {
		var vErr *user.ValidationError
		var aErr *user.AuthError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
		case errors.As(err, &aErr):
			utils.JSONError(c, http.StatusUnauthorized, aErr.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "login failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's account.
func (hb *HandlerBundle) GetProfileHandler(c *gin.Context) {
	userID := c.GetString("userID")
	u, err := hb.UserService.GetByID(c.Request.Context(), userID)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler updates the authenticated user's editable fields.
func (hb *HandlerBundle) UpdateProfileHandler(c *gin.Context) {
	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := hb.UserService.UpdateProfile(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		var nErr *user.NotFoundError
		if errors.As(err, &nErr) {
			utils.JSONError(c, http.StatusNotFound, nErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "profile update failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, u)
}
