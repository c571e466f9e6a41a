package payment

import (
	"context"
	"errors"
	"sync"
	"testing"

	paymentRepo "purrfect/database/repository/payment"
	"purrfect/models"
	"purrfect/services/payment/daraja"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakePaymentRepo struct {
	mu           sync.Mutex
	payments     map[string]*models.Payment
	transactions map[string]*models.MpesaTransaction // checkoutRequestID -> tx
	results      map[string]paymentRepo.TransactionResult
	createTxErr  error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:     make(map[string]*models.Payment),
		transactions: make(map[string]*models.MpesaTransaction),
		results:      make(map[string]paymentRepo.TransactionResult),
	}
}

func (f *fakePaymentRepo) CreatePayment(ctx context.Context, p *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetPaymentByID(ctx context.Context, id string) (*models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) ListPaymentsByUser(ctx context.Context, userID string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkPaymentFailed(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok {
		return errors.New("not found")
	}
	p.Status = models.PaymentFailed
	return nil
}

func (f *fakePaymentRepo) SettlePayment(ctx context.Context, id, status, transactionID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.payments[id]
	if !ok || p.Status != models.PaymentPending {
		return false, nil
	}
	p.Status = status
	if transactionID != "" {
		p.TransactionID = transactionID
	}
	return true, nil
}

func (f *fakePaymentRepo) CreateTransaction(ctx context.Context, tx *models.MpesaTransaction) error {
	if f.createTxErr != nil {
		return f.createTxErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *tx
	f.transactions[tx.CheckoutRequestID] = &cp
	return nil
}

func (f *fakePaymentRepo) GetTransactionByCheckoutID(ctx context.Context, checkoutRequestID string) (*models.MpesaTransaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tx, ok := f.transactions[checkoutRequestID]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *tx
	return &cp, nil
}

func (f *fakePaymentRepo) UpdateTransactionResult(ctx context.Context, id string, res paymentRepo.TransactionResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[id] = res
	return nil
}

type fakeGateway struct {
	mu      sync.Mutex
	calls   int
	pushErr error
	resp    *daraja.STKPushResponse
}

func (f *fakeGateway) STKPush(ctx context.Context, phone string, amount float64, accountRef, description string) (*daraja.STKPushResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.pushErr != nil {
		return nil, f.pushErr
	}
	return f.resp, nil
}

func (f *fakeGateway) QueryStatus(ctx context.Context, checkoutRequestID string) (*daraja.QueryResponse, error) {
	return &daraja.QueryResponse{CheckoutRequestID: checkoutRequestID, ResultCode: "0"}, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []models.Notification
}

func (r *recordingNotifier) Notify(ctx context.Context, userID, title, message, ntype string, data map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, models.Notification{UserID: userID, Title: title, Message: message, Type: ntype})
	return nil
}

func (r *recordingNotifier) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) MarkRead(ctx context.Context, id, userID string) error { return nil }

func newPaymentService(t *testing.T) (*DefaultPaymentService, *fakePaymentRepo, *fakeGateway, *recordingNotifier) {
	t.Helper()
	repo := newFakePaymentRepo()
	gw := &fakeGateway{resp: &daraja.STKPushResponse{
		MerchantRequestID: "merchant-1",
		CheckoutRequestID: "ws_CO_123",
		ResponseCode:      "0",
	}}
	notifier := &recordingNotifier{}
	svc := &DefaultPaymentService{
		Repo:     repo,
		Gateway:  gw,
		Notifier: notifier,
		Logger:   zaptest.NewLogger(t),
	}
	return svc, repo, gw, notifier
}

func TestInitiatePayment(t *testing.T) {
	svc, repo, _, _ := newPaymentService(t)

	p, err := svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount:      1500,
		PhoneNumber: "0712345678",
	})
	require.NoError(t, err)

	assert.Equal(t, models.PaymentPending, p.Status)
	assert.Equal(t, "mpesa", p.Method)

	tx := repo.transactions["ws_CO_123"]
	require.NotNil(t, tx)
	assert.Equal(t, p.ID, tx.PaymentID)
	assert.Equal(t, "254712345678", tx.PhoneNumber)
	assert.Equal(t, "PET-"+p.ID[:8], tx.AccountReference)
}

func TestInitiatePaymentValidationBeforeGateway(t *testing.T) {
	svc, repo, gw, _ := newPaymentService(t)

	var vErr *ValidationError
	_, err := svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount:      0,
		PhoneNumber: "0712345678",
	})
	require.ErrorAs(t, err, &vErr)

	_, err = svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount: 100,
	})
	require.ErrorAs(t, err, &vErr)

	assert.Zero(t, gw.calls)
	assert.Empty(t, repo.payments)
}

func TestInitiatePaymentGatewayFailure(t *testing.T) {
	svc, repo, gw, _ := newPaymentService(t)
	gw.pushErr = errors.New("gateway unreachable")

	_, err := svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount:      100,
		PhoneNumber: "0712345678",
	})

	var gErr *GatewayError
	require.ErrorAs(t, err, &gErr)

	// The pending payment is marked failed; no transaction is recorded.
	require.Len(t, repo.payments, 1)
	for _, p := range repo.payments {
		assert.Equal(t, models.PaymentFailed, p.Status)
	}
	assert.Empty(t, repo.transactions)
}

func TestInitiatePaymentCustomAccountReference(t *testing.T) {
	svc, repo, _, _ := newPaymentService(t)

	_, err := svc.InitiatePayment(context.Background(), "user-1", models.InitiatePaymentRequest{
		Amount:           250,
		PhoneNumber:      "254700000001",
		AccountReference: "INV-42",
		Description:      "Vaccination package",
	})
	require.NoError(t, err)

	tx := repo.transactions["ws_CO_123"]
	require.NotNil(t, tx)
	assert.Equal(t, "INV-42", tx.AccountReference)
	assert.Equal(t, "Vaccination package", tx.TransactionDesc)
}
