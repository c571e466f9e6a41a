package lostpet

import (
	"context"
	"fmt"
	"time"

	lostPetRepo "purrfect/database/repository/lostpet"
	"purrfect/models"

	"github.com/google/uuid"
)

// ValidationError signals malformed lost-pet input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a report that is absent or not owned by the caller.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// LostPetService manages the public lost-pet board.
type LostPetService interface {
	Report(ctx context.Context, userID string, lp models.LostPet) (*models.LostPet, error)
	// ListReports returns reports by status; an empty status means "lost".
	ListReports(ctx context.Context, status string) ([]models.LostPet, error)
	// MarkFound closes a report. Only the reporter may do so.
	MarkFound(ctx context.Context, id, userID string) error
}

// DefaultLostPetService is the production implementation.
type DefaultLostPetService struct {
	Repo lostPetRepo.LostPetRepository
}

func (s *DefaultLostPetService) Report(ctx context.Context, userID string, lp models.LostPet) (*models.LostPet, error) {
	if lp.PetName == "" || lp.Location == "" {
		return nil, &ValidationError{Message: "pet name and last seen location are required"}
	}
	lp.ID = uuid.New().String()
	lp.UserID = userID
	lp.Status = models.LostPetLost
	lp.CreatedAt = time.Now()
	lp.UpdatedAt = time.Now()
	if err := s.Repo.Create(ctx, &lp); err != nil {
		return nil, err
	}
	return &lp, nil
}

func (s *DefaultLostPetService) ListReports(ctx context.Context, status string) ([]models.LostPet, error) {
	if status == "" {
		status = models.LostPetLost
	}
	if status != models.LostPetLost && status != models.LostPetFound {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown status %q", status)}
	}
	return s.Repo.ListByStatus(ctx, status)
}

func (s *DefaultLostPetService) MarkFound(ctx context.Context, id, userID string) error {
	if err := s.Repo.UpdateStatus(ctx, id, userID, models.LostPetFound); err != nil {
		return &NotFoundError{Message: "report not found or access denied"}
	}
	return nil
}
