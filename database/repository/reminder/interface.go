package reminderRepo

import (
	"context"
	"time"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReminderRepository stores pet-care reminders.
type ReminderRepository interface {
	Create(ctx context.Context, rem *models.Reminder) error
	ListByUser(ctx context.Context, userID, reminderType string, dueBefore *time.Time) ([]models.Reminder, error)
	// ListDueUnnotified returns active reminders due at or before the cutoff
	// that have not yet been dispatched.
	ListDueUnnotified(ctx context.Context, cutoff time.Time) ([]models.Reminder, error)
	// MarkNotified flags a reminder as dispatched; the guard on notified=false
	// keeps a racing dispatcher from enqueueing it twice.
	MarkNotified(ctx context.Context, id string) (bool, error)
}

type mongoReminderRepo struct {
	coll *mongo.Collection
}

// NewMongoReminderRepo constructs a new MongoDB ReminderRepository.
func NewMongoReminderRepo() ReminderRepository {
	return &mongoReminderRepo{coll: database.DB().Collection("reminders")}
}
