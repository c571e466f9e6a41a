package notification

import (
	"context"
	"time"

	notificationRepo "purrfect/database/repository/notification"
	"purrfect/models"

	"github.com/google/uuid"
)

// NotificationService is the notification sink: writers insert structured
// notifications and move on. Delivery and formatting are downstream concerns.
type NotificationService interface {
	Notify(ctx context.Context, userID, title, message, ntype string, data map[string]any) error
	ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, message, ntype string, data map[string]any) error {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}
	return s.Repo.Create(ctx, n)
}

func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string, unreadOnly bool) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID, unreadOnly)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.Repo.MarkRead(ctx, id, userID)
}
