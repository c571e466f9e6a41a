package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.payments.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Payment
	if err := r.payments.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPaymentRepo) ListPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.payments.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *mongoPaymentRepo) MarkPaymentFailed(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": models.PaymentFailed, "updated_at": time.Now()}}
	res, err := r.payments.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to mark payment failed: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPaymentRepo) SettlePayment(ctx context.Context, id, status, transactionID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.PaymentPending}
	set := bson.M{"status": status, "updated_at": time.Now()}
	if transactionID != "" {
		set["transaction_id"] = transactionID
	}

	res, err := r.payments.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to settle payment: %w", err)
	}
	return res.MatchedCount > 0, nil
}

func (r *mongoPaymentRepo) CreateTransaction(ctx context.Context, tx *models.MpesaTransaction) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.transactions.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("failed to insert mpesa transaction: %w", err)
	}
	return nil
}

func (r *mongoPaymentRepo) GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.MpesaTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var tx models.MpesaTransaction
	filter := bson.M{"checkout_request_id": checkoutRequestID}
	if err := r.transactions.FindOne(ctx, filter).Decode(&tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *mongoPaymentRepo) UpdateTransactionResult(ctx context.Context, id string, res TransactionResult) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"result_code": res.ResultCode,
		"result_desc": res.ResultDesc,
	}
	if res.ReceiptNumber != "" {
		set["mpesa_receipt_number"] = res.ReceiptNumber
	}
	if !res.TransactionDate.IsZero() {
		set["transaction_date"] = res.TransactionDate
	}
	if res.PhoneNumber != "" {
		set["phone_number"] = res.PhoneNumber
	}
	if res.Amount > 0 {
		set["amount"] = res.Amount
	}

	upd, err := r.transactions.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update mpesa transaction: %w", err)
	}
	if upd.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPaymentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.payments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create payment indexes: %w", err)
	}
	if _, err := r.transactions.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// The callback correlation key; the gateway guarantees uniqueness and
		// the index enforces it on our side.
		{Keys: bson.D{{Key: "checkout_request_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create mpesa transaction indexes: %w", err)
	}
	return nil
}
