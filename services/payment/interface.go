package payment

import (
	"context"

	paymentRepo "purrfect/database/repository/payment"
	"purrfect/models"
	"purrfect/services/notification"
	"purrfect/services/payment/daraja"

	"go.uber.org/zap"
)

// PaymentService initiates M-Pesa charges and reconciles their asynchronous
// outcomes.
type PaymentService interface {
	// InitiatePayment validates the request, records a pending payment and
	// fires the STK push. On gateway rejection the payment is marked failed
	// and a GatewayError is returned.
	InitiatePayment(ctx context.Context, userID string, req models.InitiatePaymentRequest) (*models.Payment, error)
	// HandleCallback applies an STK callback to the matching transaction and
	// payment. It is idempotent: redelivered callbacks change nothing and
	// trigger no further notifications.
	HandleCallback(ctx context.Context, cb daraja.STKCallback) error
	// QueryStatus asks the gateway for the live state of a push. Diagnostic;
	// it does not mutate local records.
	QueryStatus(ctx context.Context, checkoutRequestID string) (*daraja.QueryResponse, error)
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPaymentsForUser(ctx context.Context, userID string) ([]models.Payment, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Repo     paymentRepo.PaymentRepository
	Gateway  daraja.Gateway
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func (s *DefaultPaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.Repo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Message: "payment not found"}
	}
	return p, nil
}

func (s *DefaultPaymentService) ListPaymentsForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.Repo.ListPaymentsByUser(ctx, userID)
}

func (s *DefaultPaymentService) QueryStatus(ctx context.Context, checkoutRequestID string) (*daraja.QueryResponse, error) {
	if checkoutRequestID == "" {
		return nil, &ValidationError{Message: "checkout request ID is required"}
	}
	res, err := s.Gateway.QueryStatus(ctx, checkoutRequestID)
	if err != nil {
		return nil, &GatewayError{Message: "status query failed", Cause: err}
	}
	return res, nil
}
