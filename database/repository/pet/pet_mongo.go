package petRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPetRepo) Create(ctx context.Context, pet *models.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.pets.InsertOne(ctx, pet); err != nil {
		return fmt.Errorf("failed to insert pet: %w", err)
	}
	return nil
}

func (r *mongoPetRepo) GetOwned(ctx context.Context, petID, ownerID string) (*models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pet models.Pet
	filter := bson.M{"id": petID, "user_id": ownerID}
	if err := r.pets.FindOne(ctx, filter).Decode(&pet); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *mongoPetRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.pets.Find(ctx, bson.M{"user_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pets []models.Pet
	if err := cursor.All(ctx, &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *mongoPetRepo) Update(ctx context.Context, pet *models.Pet) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.pets.ReplaceOne(ctx, bson.M{"id": pet.ID, "user_id": pet.UserID}, pet)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPetRepo) Delete(ctx context.Context, petID, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.pets.DeleteOne(ctx, bson.M{"id": petID, "user_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoPetRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.pets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create pet indexes: %w", err)
	}

	for _, coll := range []*mongo.Collection{r.records, r.vaccinations, r.metrics, r.alerts, r.behaviors} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "pet_id", Value: 1}},
		}); err != nil {
			return fmt.Errorf("failed to create health indexes: %w", err)
		}
	}
	return nil
}
