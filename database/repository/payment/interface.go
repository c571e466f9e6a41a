package paymentRepo

import (
	"context"
	"time"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TransactionResult carries the fields extracted from a gateway callback.
type TransactionResult struct {
	ResultCode      int
	ResultDesc      string
	ReceiptNumber   string
	TransactionDate time.Time
	PhoneNumber     string
	Amount          float64
}

// PaymentRepository persists payments and their M-Pesa transaction records.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPaymentByID(ctx context.Context, id string) (*models.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error)
	// MarkPaymentFailed unconditionally fails a payment. Used on the
	// initiation path when the gateway rejects the charge request.
	MarkPaymentFailed(ctx context.Context, id string) error
	// SettlePayment transitions a payment out of pending. The update filter
	// requires status == "pending", which both serializes concurrent callback
	// redeliveries for the same payment and makes the transition idempotent:
	// the second delivery matches nothing and applied is false.
	SettlePayment(ctx context.Context, id, status, transactionID string) (applied bool, err error)

	CreateTransaction(ctx context.Context, tx *models.MpesaTransaction) error
	GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.MpesaTransaction, error)
	UpdateTransactionResult(ctx context.Context, id string, res TransactionResult) error
}

type mongoPaymentRepo struct {
	payments     *mongo.Collection
	transactions *mongo.Collection
}

// NewMongoPaymentRepo constructs a new MongoDB PaymentRepository.
func NewMongoPaymentRepo() PaymentRepository {
	db := database.DB()
	r := &mongoPaymentRepo{
		payments:     db.Collection("payments"),
		transactions: db.Collection("mpesa_transactions"),
	}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
