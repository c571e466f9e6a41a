package payment

import (
	"context"
	"testing"

	"purrfect/models"
	"purrfect/services/payment/daraja"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initiatedPayment(t *testing.T, svc *DefaultPaymentService) *models.Payment {
	t.Helper()
	p, err := svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount:      1500,
		PhoneNumber: "0712345678",
	})
	require.NoError(t, err)
	return p
}

func successCallback() daraja.STKCallback {
	cb := daraja.STKCallback{
		MerchantRequestID: "merchant-1",
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        0,
		ResultDesc:        "The service request is processed successfully.",
	}
	cb.CallbackMetadata.Item = []daraja.CallbackItem{
		{Name: "Amount", Value: float64(1500)},
		{Name: "MpesaReceiptNumber", Value: "QAX123XYZ"},
		{Name: "TransactionDate", Value: float64(20260828140509)},
		{Name: "PhoneNumber", Value: float64(254712345678)},
	}
	return cb
}

func TestHandleCallbackSuccess(t *testing.T) {
	svc, repo, _, notifier := newPaymentService(t)
	p := initiatedPayment(t, svc)

	require.NoError(t, svc.HandleCallback(context.Background(), successCallback()))

	settled := repo.payments[p.ID]
	assert.Equal(t, models.PaymentCompleted, settled.Status)
	assert.Equal(t, "QAX123XYZ", settled.TransactionID)

	tx := repo.transactions["ws_CO_123"]
	res := repo.results[tx.ID]
	assert.Equal(t, 0, res.ResultCode)
	assert.Equal(t, "QAX123XYZ", res.ReceiptNumber)
	assert.Equal(t, "254712345678", res.PhoneNumber)
	assert.Equal(t, float64(1500), res.Amount)
	assert.Equal(t, "2026-08-28", res.TransactionDate.Format("2006-01-02"))

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Payment Successful", notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, "QAX123XYZ")
	assert.Equal(t, "user-1", notifier.sent[0].UserID)
}

func TestHandleCallbackFailure(t *testing.T) {
	svc, repo, _, notifier := newPaymentService(t)
	p := initiatedPayment(t, svc)

	cb := daraja.STKCallback{
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        1032,
		ResultDesc:        "Request cancelled by user",
	}
	require.NoError(t, svc.HandleCallback(context.Background(), cb))

	assert.Equal(t, models.PaymentFailed, repo.payments[p.ID].Status)
	assert.Empty(t, repo.payments[p.ID].TransactionID)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Payment Failed", notifier.sent[0].Title)
	assert.Contains(t, notifier.sent[0].Message, "Request cancelled by user")
}

func TestHandleCallbackReplayIsIdempotent(t *testing.T) {
	svc, repo, _, notifier := newPaymentService(t)
	p := initiatedPayment(t, svc)

	cb := successCallback()
	require.NoError(t, svc.HandleCallback(context.Background(), cb))
	require.NoError(t, svc.HandleCallback(context.Background(), cb))

	assert.Equal(t, models.PaymentCompleted, repo.payments[p.ID].Status)
	// One notification total, not one per delivery.
	assert.Len(t, notifier.sent, 1)
}

func TestHandleCallbackConflictingRedelivery(t *testing.T) {
	svc, repo, _, notifier := newPaymentService(t)
	p := initiatedPayment(t, svc)

	require.NoError(t, svc.HandleCallback(context.Background(), successCallback()))

	// A late failure delivery for the same push must not flip the state.
	late := daraja.STKCallback{
		CheckoutRequestID: "ws_CO_123",
		ResultCode:        1,
		ResultDesc:        "Insufficient funds",
	}
	require.NoError(t, svc.HandleCallback(context.Background(), late))

	assert.Equal(t, models.PaymentCompleted, repo.payments[p.ID].Status)
	assert.Len(t, notifier.sent, 1)
}

func TestHandleCallbackUnknownCheckout(t *testing.T) {
	svc, repo, _, notifier := newPaymentService(t)
	initiatedPayment(t, svc)

	cb := successCallback()
	cb.CheckoutRequestID = "ws_CO_unknown"
	err := svc.HandleCallback(context.Background(), cb)

	var nErr *NotFoundError
	require.ErrorAs(t, err, &nErr)
	assert.Empty(t, notifier.sent)
	for _, p := range repo.payments {
		assert.Equal(t, models.PaymentPending, p.Status)
	}
}
