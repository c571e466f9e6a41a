package adoptionRepo

import (
	"context"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AdoptionRepository stores adoption listings and applications.
type AdoptionRepository interface {
	CreateListing(ctx context.Context, l *models.AdoptionListing) error
	GetListing(ctx context.Context, id string) (*models.AdoptionListing, error)
	ListListings(ctx context.Context, filter models.ListingFilter) (*models.ListingPage, error)

	CreateApplication(ctx context.Context, a *models.AdoptionApplication) error
	// HasApplied reports whether applicantID already has an application for
	// the listing.
	HasApplied(ctx context.Context, listingID, applicantID string) (bool, error)
	ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]models.AdoptionApplication, error)
	ListApplicationsForOwner(ctx context.Context, ownerID string) ([]models.AdoptionApplication, error)
}

type mongoAdoptionRepo struct {
	listings     *mongo.Collection
	applications *mongo.Collection
}

// NewMongoAdoptionRepo constructs a new MongoDB AdoptionRepository.
func NewMongoAdoptionRepo() AdoptionRepository {
	db := database.DB()
	r := &mongoAdoptionRepo{
		listings:     db.Collection("adoption_listings"),
		applications: db.Collection("adoption_applications"),
	}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
