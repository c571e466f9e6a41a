package models

import "time"

// Payment statuses. The machine is pending -> {completed | failed}, terminal.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Payment is a pending or settled mobile-money charge.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	AppointmentID string    `bson:"appointment_id,omitempty" json:"appointment_id,omitempty"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Amount        float64   `bson:"amount" json:"amount"`
	Method        string    `bson:"method" json:"method"`
	Status        string    `bson:"status" json:"status"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// MpesaTransaction mirrors one STK push request. CheckoutRequestID is the
// gateway-issued correlation key the asynchronous callback is matched on.
type MpesaTransaction struct {
	ID                string    `bson:"id" json:"id"`
	PaymentID         string    `bson:"payment_id" json:"payment_id"`
	MerchantRequestID string    `bson:"merchant_request_id" json:"merchant_request_id"`
	CheckoutRequestID string    `bson:"checkout_request_id" json:"checkout_request_id"`
	PhoneNumber       string    `bson:"phone_number" json:"phone_number"`
	Amount            float64   `bson:"amount" json:"amount"`
	AccountReference  string    `bson:"account_reference" json:"account_reference"`
	TransactionDesc   string    `bson:"transaction_desc" json:"transaction_desc"`
	ResultCode        *int      `bson:"result_code,omitempty" json:"result_code,omitempty"`
	ResultDesc        string    `bson:"result_desc,omitempty" json:"result_desc,omitempty"`
	ReceiptNumber     string    `bson:"mpesa_receipt_number,omitempty" json:"mpesa_receipt_number,omitempty"`
	TransactionDate   time.Time `bson:"transaction_date,omitempty" json:"transaction_date,omitempty"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// InitiatePaymentRequest is the payment-initiation API payload.
type InitiatePaymentRequest struct {
	AppointmentID    string  `json:"appointment_id"`
	Amount           float64 `json:"amount" binding:"required"`
	PhoneNumber      string  `json:"phone_number" binding:"required"`
	AccountReference string  `json:"account_reference"`
	Description      string  `json:"description"`
}
