package handlers

import (
	"errors"
	"net/http"

	"purrfect/models"
	"purrfect/services/payment"
	"purrfect/services/payment/daraja"
	"purrfect/utils"

	"github.com/gin-gonic/gin"
)

// InitiatePaymentHandler fires an STK push for the authenticated user.
func (hb *HandlerBundle) InitiatePaymentHandler(c *gin.Context) {
	var req models.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, err := hb.PaymentService.InitiatePayment(c.Request.Context(), c.GetString("userID"), req)
	if err != nil {
		var vErr *payment.ValidationError
		var gErr *payment.GatewayError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
		case errors.As(err, &gErr):
			utils.JSONError(c, http.StatusBadGateway, gErr.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "payment initiation failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"payment": p,
		"message": "Check your phone to complete the payment",
	})
}

// MpesaCallbackHandler receives the gateway's asynchronous STK result. The
// gateway retries on non-200, so the only non-200 answer is for a callback
// that matches no known transaction.
func (hb *HandlerBundle) MpesaCallbackHandler(c *gin.Context) {
	var envelope daraja.CallbackEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid callback payload", err.Error())
		return
	}

	err := hb.PaymentService.HandleCallback(c.Request.Context(), envelope.Body.STKCallback)
	if err != nil {
		var nErr *payment.NotFoundError
		if errors.As(err, &nErr) {
			utils.JSONError(c, http.StatusNotFound, nErr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "callback processing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}

// GetPaymentHandler returns one payment. Callers may only read their own.
func (hb *HandlerBundle) GetPaymentHandler(c *gin.Context) {
	p, err := hb.PaymentService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "payment not found", "")
		return
	}
	if p.UserID != c.GetString("userID") && c.GetString("userRole") != models.RoleAdmin {
		utils.JSONError(c, http.StatusForbidden, "access denied", "")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPaymentsHandler returns the authenticated user's payments.
func (hb *HandlerBundle) ListPaymentsHandler(c *gin.Context) {
	payments, err := hb.PaymentService.ListPaymentsForUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list payments", err.Error())
		return
	}
	c.JSON(http.StatusOK, payments)
}

// QueryPaymentStatusHandler asks the gateway for the live state of a push.
func (hb *HandlerBundle) QueryPaymentStatusHandler(c *gin.Context) {
	res, err := hb.PaymentService.QueryStatus(c.Request.Context(), c.Param("checkoutRequestID"))
	if err != nil {
		var vErr *payment.ValidationError
		var gErr *payment.GatewayError
		switch {
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, vErr.Message, "")
		case errors.As(err, &gErr):
			utils.JSONError(c, http.StatusBadGateway, gErr.Message, "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "status query failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, res)
}
