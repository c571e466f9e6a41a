package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoReminderRepo) Create(ctx context.Context, rem *models.Reminder) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, rem); err != nil {
		return fmt.Errorf("failed to insert reminder: %w", err)
	}
	return nil
}

func (r *mongoReminderRepo) ListByUser(ctx context.Context, userID, reminderType string, dueBefore *time.Time) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID, "status": models.ReminderActive}
	if reminderType != "" {
		filter["type"] = reminderType
	}
	if dueBefore != nil {
		filter["due_date"] = bson.M{"$lte": *dueBefore}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *mongoReminderRepo) ListDueUnnotified(ctx context.Context, cutoff time.Time) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":   models.ReminderActive,
		"notified": false,
		"due_date": bson.M{"$lte": cutoff},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reminders []models.Reminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *mongoReminderRepo) MarkNotified(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "notified": false}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"notified": true}})
	if err != nil {
		return false, fmt.Errorf("failed to mark reminder notified: %w", err)
	}
	return res.MatchedCount > 0, nil
}
