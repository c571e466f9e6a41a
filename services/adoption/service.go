package adoption

import (
	"context"
	"time"

	adoptionRepo "purrfect/database/repository/adoption"
	"purrfect/models"
	"purrfect/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ValidationError signals malformed listing or application input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError signals a missing listing.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError signals a repeat application for the same listing.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AdoptionService manages the adoption marketplace: listings and applications.
type AdoptionService interface {
	CreateListing(ctx context.Context, userID string, l models.AdoptionListing) (*models.AdoptionListing, error)
	GetListing(ctx context.Context, id string) (*models.AdoptionListing, error)
	BrowseListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error)
	// Apply submits an application for a listing. One application per user
	// per listing; repeats are a ConflictError. The listing owner is notified.
	Apply(ctx context.Context, applicantID, listingID string, data map[string]any) (*models.AdoptionApplication, error)
	ListMyApplications(ctx context.Context, applicantID string) ([]models.AdoptionApplication, error)
	ListReceivedApplications(ctx context.Context, ownerID string) ([]models.AdoptionApplication, error)
}

// DefaultAdoptionService is the production implementation.
type DefaultAdoptionService struct {
	Repo     adoptionRepo.AdoptionRepository
	Notifier notification.NotificationService
	Logger   *zap.Logger
}

func (s *DefaultAdoptionService) CreateListing(ctx context.Context, userID string, l models.AdoptionListing) (*models.AdoptionListing, error) {
	if l.PetName == "" || l.Species == "" || l.Description == "" || l.Location == "" {
		return nil, &ValidationError{Message: "pet name, species, description and location are required"}
	}
	l.ID = uuid.New().String()
	l.UserID = userID
	l.Status = models.ListingAvailable
	l.CreatedAt = time.Now()
	if err := s.Repo.CreateListing(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *DefaultAdoptionService) GetListing(ctx context.Context, id string) (*models.AdoptionListing, error) {
	l, err := s.Repo.GetListing(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Message: "listing not found"}
	}
	return l, nil
}

func (s *DefaultAdoptionService) BrowseListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 50 {
		filter.Limit = 12
	}
	return s.Repo.ListListings(ctx, filter)
}

func (s *DefaultAdoptionService) Apply(ctx context.Context, applicantID, listingID string, data map[string]any) (*models.AdoptionApplication, error) {
	l, err := s.Repo.GetListing(ctx, listingID)
	if err != nil {
		return nil, &NotFoundError{Message: "listing not found"}
	}
	if l.UserID == applicantID {
		return nil, &ValidationError{Message: "you cannot apply for your own listing"}
	}
	if l.Status != models.ListingAvailable {
		return nil, &ConflictError{Message: "this pet is no longer available for adoption"}
	}

	applied, err := s.Repo.HasApplied(ctx, listingID, applicantID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, &ConflictError{Message: "you have already applied for this pet"}
	}

	app := &models.AdoptionApplication{
		ID:          uuid.New().String(),
		ListingID:   listingID,
		ApplicantID: applicantID,
		Data:        data,
		Status:      "pending",
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.CreateApplication(ctx, app); err != nil {
		// The unique (listing, applicant) index closes the check-then-insert
		// race on concurrent submissions.
		return nil, &ConflictError{Message: "you have already applied for this pet"}
	}

	if err := s.Notifier.Notify(ctx, l.UserID, "New Adoption Application",
		"Someone applied to adopt "+l.PetName, "adoption", map[string]any{
			"listing_id":     l.ID,
			"application_id": app.ID,
		}); err != nil {
		s.Logger.Error("failed to notify listing owner",
			zap.String("listingId", l.ID), zap.Error(err))
	}

	return app, nil
}

func (s *DefaultAdoptionService) ListMyApplications(ctx context.Context, applicantID string) ([]models.AdoptionApplication, error) {
	return s.Repo.ListApplicationsByApplicant(ctx, applicantID)
}

func (s *DefaultAdoptionService) ListReceivedApplications(ctx context.Context, ownerID string) ([]models.AdoptionApplication, error) {
	return s.Repo.ListApplicationsForOwner(ctx, ownerID)
}
