package payment

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"
	"purrfect/services/payment/daraja"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultPaymentService) InitiatePayment(ctx context.Context, userID string, req models.InitiatePaymentRequest) (*models.Payment, error) {
	// Fail fast before any I/O.
	if req.Amount <= 0 {
		return nil, &ValidationError{Message: "amount must be greater than zero"}
	}
	if req.PhoneNumber == "" {
		return nil, &ValidationError{Message: "phone number is required"}
	}

	phone := daraja.NormalizePhone(req.PhoneNumber)

	p := &models.Payment{
		ID:            uuid.New().String(),
		AppointmentID: req.AppointmentID,
		UserID:        userID,
		Amount:        req.Amount,
		Method:        "mpesa",
		Status:        models.PaymentPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.Repo.CreatePayment(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	accountRef := req.AccountReference
	if accountRef == "" {
		accountRef = "PET-" + p.ID[:8]
	}
	description := req.Description
	if description == "" {
		description = "Pet care services"
	}

	resp, err := s.Gateway.STKPush(ctx, phone, req.Amount, accountRef, description)
	if err != nil {
		s.Logger.Error("stk push failed",
			zap.String("paymentId", p.ID), zap.Error(err))
		if ferr := s.Repo.MarkPaymentFailed(ctx, p.ID); ferr != nil {
			s.Logger.Error("failed to mark payment failed",
				zap.String("paymentId", p.ID), zap.Error(ferr))
		}
		return nil, &GatewayError{Message: "payment request was rejected by the gateway", Cause: err}
	}

	tx := &models.MpesaTransaction{
		ID:                uuid.New().String(),
		PaymentID:         p.ID,
		MerchantRequestID: resp.MerchantRequestID,
		CheckoutRequestID: resp.CheckoutRequestID,
		PhoneNumber:       phone,
		Amount:            req.Amount,
		AccountReference:  accountRef,
		TransactionDesc:   description,
		CreatedAt:         time.Now(),
	}
	if err := s.Repo.CreateTransaction(ctx, tx); err != nil {
		// The push is already in flight; keep the payment pending and rely on
		// a status query for manual reconciliation.
		s.Logger.Error("failed to record mpesa transaction",
			zap.String("paymentId", p.ID),
			zap.String("checkoutRequestId", resp.CheckoutRequestID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.Logger.Info("stk push initiated",
		zap.String("paymentId", p.ID),
		zap.String("checkoutRequestId", resp.CheckoutRequestID),
		zap.Float64("amount", req.Amount))
	return p, nil
}
