package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"purrfect/models"
	"purrfect/services/payment"
	"purrfect/services/payment/daraja"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPaymentService struct {
	handled    []daraja.STKCallback
	handleErr  error
	initiated  *models.Payment
	initateErr error
}

func (s *stubPaymentService) InitiatePayment(ctx context.Context, userID string, req models.InitiatePaymentRequest) (*models.Payment, error) {
	return s.initiated, s.initateErr
}

func (s *stubPaymentService) HandleCallback(ctx context.Context, cb daraja.STKCallback) error {
	s.handled = append(s.handled, cb)
	return s.handleErr
}

func (s *stubPaymentService) QueryStatus(ctx context.Context, checkoutRequestID string) (*daraja.QueryResponse, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPaymentService) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubPaymentService) ListPaymentsForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	return nil, nil
}

func callbackRouter(svc payment.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	hb := &HandlerBundle{PaymentService: svc}
	r := gin.New()
	r.POST("/api/payments/mpesa/callback", hb.MpesaCallbackHandler)
	return r
}

func callbackBody(checkoutRequestID string, resultCode int) []byte {
	payload := map[string]any{
		"Body": map[string]any{
			"stkCallback": map[string]any{
				"MerchantRequestID": "merchant-1",
				"CheckoutRequestID": checkoutRequestID,
				"ResultCode":        resultCode,
				"ResultDesc":        "ok",
				"CallbackMetadata": map[string]any{
					"Item": []map[string]any{
						{"Name": "Amount", "Value": 1500},
						{"Name": "MpesaReceiptNumber", "Value": "QAX123XYZ"},
					},
				},
			},
		},
	}
	raw, _ := json.Marshal(payload)
	return raw
}

func TestMpesaCallbackEndpoint(t *testing.T) {
	svc := &stubPaymentService{}
	router := callbackRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/mpesa/callback",
		bytes.NewReader(callbackBody("ws_CO_123", 0)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.handled, 1)
	assert.Equal(t, "ws_CO_123", svc.handled[0].CheckoutRequestID)
	assert.Equal(t, "QAX123XYZ", svc.handled[0].MetadataString("MpesaReceiptNumber"))
}

func TestMpesaCallbackEndpointUnknownTransaction(t *testing.T) {
	svc := &stubPaymentService{handleErr: &payment.NotFoundError{Message: "no transaction"}}
	router := callbackRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/mpesa/callback",
		bytes.NewReader(callbackBody("ws_CO_unknown", 0)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMpesaCallbackEndpointMalformedBody(t *testing.T) {
	svc := &stubPaymentService{}
	router := callbackRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/payments/mpesa/callback",
		bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.handled)
}
