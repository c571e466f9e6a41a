package payment

import (
	"context"
	"fmt"
	"time"

	paymentRepo "purrfect/database/repository/payment"
	"purrfect/models"
	"purrfect/services/payment/daraja"

	"go.uber.org/zap"
)

// HandleCallback reconciles an STK callback. The flow is: locate the
// transaction by checkout request ID, persist the gateway result, then
// settle the payment with a pending-guarded update. Only the delivery that
// wins the settle performs the user notification.
func (s *DefaultPaymentService) HandleCallback(ctx context.Context, cb daraja.STKCallback) error {
	tx, err := s.Repo.GetTransactionByCheckoutID(ctx, cb.CheckoutRequestID)
	if err != nil {
		return &NotFoundError{Message: fmt.Sprintf("no transaction for checkout request %s", cb.CheckoutRequestID)}
	}

	res := paymentRepo.TransactionResult{
		ResultCode:    cb.ResultCode,
		ResultDesc:    cb.ResultDesc,
		ReceiptNumber: cb.MetadataString("MpesaReceiptNumber"),
		PhoneNumber:   metadataPhone(&cb),
		Amount:        cb.MetadataFloat("Amount"),
	}
	if ts := cb.MetadataFloat("TransactionDate"); ts > 0 {
		// TransactionDate arrives as a numeric YYYYMMDDHHMMSS.
		if t, perr := time.Parse("20060102150405", fmt.Sprintf("%.0f", ts)); perr == nil {
			res.TransactionDate = t
		}
	}
	if err := s.Repo.UpdateTransactionResult(ctx, tx.ID, res); err != nil {
		s.Logger.Error("failed to update transaction result",
			zap.String("transactionId", tx.ID), zap.Error(err))
	}

	status := models.PaymentFailed
	if cb.ResultCode == daraja.ResultSuccess {
		status = models.PaymentCompleted
	}

	applied, err := s.Repo.SettlePayment(ctx, tx.PaymentID, status, res.ReceiptNumber)
	if err != nil {
		return fmt.Errorf("failed to settle payment %s: %w", tx.PaymentID, err)
	}
	if !applied {
		// Redelivery, or the payment already left pending. Nothing to do.
		s.Logger.Info("callback ignored, payment already settled",
			zap.String("paymentId", tx.PaymentID),
			zap.String("checkoutRequestId", cb.CheckoutRequestID))
		return nil
	}

	s.Logger.Info("payment settled",
		zap.String("paymentId", tx.PaymentID),
		zap.String("status", status),
		zap.Int("resultCode", cb.ResultCode))

	s.notifySettlement(ctx, tx, status, res)
	return nil
}

// metadataPhone handles the gateway sending PhoneNumber as either a string
// or a JSON number.
func metadataPhone(cb *daraja.STKCallback) string {
	if s := cb.MetadataString("PhoneNumber"); s != "" {
		return s
	}
	if f := cb.MetadataFloat("PhoneNumber"); f > 0 {
		return fmt.Sprintf("%.0f", f)
	}
	return ""
}

func (s *DefaultPaymentService) notifySettlement(ctx context.Context, tx *models.MpesaTransaction, status string, res paymentRepo.TransactionResult) {
	p, err := s.Repo.GetPaymentByID(ctx, tx.PaymentID)
	if err != nil {
		s.Logger.Error("failed to load payment for notification",
			zap.String("paymentId", tx.PaymentID), zap.Error(err))
		return
	}

	var title, message string
	if status == models.PaymentCompleted {
		title = "Payment Successful"
		message = fmt.Sprintf("Your payment of KES %.2f was received. Receipt: %s", tx.Amount, res.ReceiptNumber)
	} else {
		title = "Payment Failed"
		message = fmt.Sprintf("Your payment failed: %s", res.ResultDesc)
	}

	if err := s.Notifier.Notify(ctx, p.UserID, title, message, "payment", map[string]any{
		"payment_id": p.ID,
		"status":     status,
	}); err != nil {
		s.Logger.Error("failed to notify payer",
			zap.String("paymentId", p.ID), zap.Error(err))
	}
}
