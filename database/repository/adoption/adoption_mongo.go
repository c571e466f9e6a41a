package adoptionRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAdoptionRepo) CreateListing(ctx context.Context, l *models.AdoptionListing) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.listings.InsertOne(ctx, l); err != nil {
		return fmt.Errorf("failed to insert adoption listing: %w", err)
	}
	return nil
}

func (r *mongoAdoptionRepo) GetListing(ctx context.Context, id string) (*models.AdoptionListing, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var l models.AdoptionListing
	if err := r.listings.FindOne(ctx, bson.M{"id": id}).Decode(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *mongoAdoptionRepo) ListListings(ctx context.Context, f models.ListingFilter) (*models.ListingPage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"status": models.ListingAvailable}
	if f.Species != "" {
		filter["species"] = f.Species
	}
	if f.Breed != "" {
		filter["breed"] = primitive.Regex{Pattern: f.Breed, Options: "i"}
	}
	if f.Size != "" {
		filter["size"] = f.Size
	}
	if f.Location != "" {
		filter["location"] = primitive.Regex{Pattern: f.Location, Options: "i"}
	}
	age := bson.M{}
	if f.MinAge > 0 {
		age["$gte"] = f.MinAge
	}
	if f.MaxAge > 0 {
		age["$lte"] = f.MaxAge
	}
	if len(age) > 0 {
		filter["age"] = age
	}
	if f.GoodWithKids {
		filter["good_with_kids"] = true
	}
	if f.GoodWithPets {
		filter["good_with_pets"] = true
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 12
	}

	total, err := r.listings.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.listings.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	listings := []models.AdoptionListing{}
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &models.ListingPage{
		Listings:   listings,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (r *mongoAdoptionRepo) CreateApplication(ctx context.Context, a *models.AdoptionApplication) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.applications.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to insert adoption application: %w", err)
	}
	return nil
}

func (r *mongoAdoptionRepo) HasApplied(ctx context.Context, listingID, applicantID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"listing_id": listingID, "applicant_id": applicantID}
	count, err := r.applications.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mongoAdoptionRepo) ListApplicationsByApplicant(ctx context.Context, applicantID string) ([]models.AdoptionApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.applications.Find(ctx, bson.M{"applicant_id": applicantID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.AdoptionApplication
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *mongoAdoptionRepo) ListApplicationsForOwner(ctx context.Context, ownerID string) ([]models.AdoptionApplication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Applications for listings owned by ownerID.
	cursor, err := r.listings.Find(ctx, bson.M{"user_id": ownerID},
		options.Find().SetProjection(bson.M{"id": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var owned []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &owned); err != nil {
		return nil, err
	}
	if len(owned) == 0 {
		return []models.AdoptionApplication{}, nil
	}

	ids := make([]string, len(owned))
	for i, l := range owned {
		ids[i] = l.ID
	}

	appCursor, err := r.applications.Find(ctx, bson.M{"listing_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer appCursor.Close(ctx)

	var apps []models.AdoptionApplication
	if err := appCursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *mongoAdoptionRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.listings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "species", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create listing indexes: %w", err)
	}
	if _, err := r.applications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One application per applicant per listing.
		{Keys: bson.D{{Key: "listing_id", Value: 1}, {Key: "applicant_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}
	return nil
}
