package models

import "time"

// Reminder statuses.
const (
	ReminderActive    = "active"
	ReminderDone      = "done"
	ReminderDismissed = "dismissed"
)

// Reminder is a scheduled care task for a pet (medication, vaccination, ...).
type Reminder struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	PetID             string    `bson:"pet_id" json:"pet_id"`
	Type              string    `bson:"type" json:"type"`
	Title             string    `bson:"title" json:"title"`
	Description       string    `bson:"description,omitempty" json:"description,omitempty"`
	DueDate           time.Time `bson:"due_date" json:"due_date"`
	Recurring         bool      `bson:"recurring" json:"recurring"`
	RecurringInterval string    `bson:"recurring_interval,omitempty" json:"recurring_interval,omitempty"` // "daily", "weekly", "monthly"
	Status            string    `bson:"status" json:"status"`
	Notified          bool      `bson:"notified" json:"notified"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// ReminderDuePayload is the asynq task payload for a due reminder.
type ReminderDuePayload struct {
	ReminderID string `json:"reminderId"`
	UserID     string `json:"userId"`
	PetID      string `json:"petId"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
