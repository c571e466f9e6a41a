package reminder

import (
	"context"
	"fmt"
	"time"

	reminderRepo "purrfect/database/repository/reminder"
	"purrfect/models"

	"github.com/google/uuid"
)

// ValidationError signals malformed reminder input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ReminderService manages pet-care reminders. Dispatching due reminders is
// the cron worker's job; this service only creates and reads them.
type ReminderService interface {
	Create(ctx context.Context, userID string, req CreateReminderRequest) (*models.Reminder, error)
	// List returns the user's reminders, optionally filtered by type and a
	// due-before cutoff.
	List(ctx context.Context, userID, reminderType, dueBefore string) ([]models.Reminder, error)
}

// CreateReminderRequest is the reminder creation payload.
type CreateReminderRequest struct {
	PetID             string `json:"pet_id" binding:"required"`
	Type              string `json:"type" binding:"required"`
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description"`
	DueDate           string `json:"due_date" binding:"required"` // RFC 3339
	Recurring         bool   `json:"recurring"`
	RecurringInterval string `json:"recurring_interval"`
}

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo reminderRepo.ReminderRepository
}

func (s *DefaultReminderService) Create(ctx context.Context, userID string, req CreateReminderRequest) (*models.Reminder, error) {
	if req.PetID == "" || req.Type == "" || req.Title == "" {
		return nil, &ValidationError{Message: "pet ID, type and title are required"}
	}
	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid due date %q, expected RFC 3339", req.DueDate)}
	}
	if req.Recurring {
		switch req.RecurringInterval {
		case "daily", "weekly", "monthly":
		default:
			return nil, &ValidationError{Message: "recurring interval must be daily, weekly or monthly"}
		}
	}

	rem := &models.Reminder{
		ID:                uuid.New().String(),
		UserID:            userID,
		PetID:             req.PetID,
		Type:              req.Type,
		Title:             req.Title,
		Description:       req.Description,
		DueDate:           due,
		Recurring:         req.Recurring,
		RecurringInterval: req.RecurringInterval,
		Status:            models.ReminderActive,
		CreatedAt:         time.Now(),
	}
	if err := s.Repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *DefaultReminderService) List(ctx context.Context, userID, reminderType, dueBefore string) ([]models.Reminder, error) {
	var cutoff *time.Time
	if dueBefore != "" {
		t, err := time.Parse(time.RFC3339, dueBefore)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid due-before %q, expected RFC 3339", dueBefore)}
		}
		cutoff = &t
	}
	return s.Repo.ListByUser(ctx, userID, reminderType, cutoff)
}
