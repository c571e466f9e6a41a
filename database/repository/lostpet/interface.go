package lostPetRepo

import (
	"context"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LostPetRepository stores lost-pet reports.
type LostPetRepository interface {
	Create(ctx context.Context, lp *models.LostPet) error
	ListByStatus(ctx context.Context, status string) ([]models.LostPet, error)
	// UpdateStatus is owner-scoped: only the reporter may change the status.
	UpdateStatus(ctx context.Context, id, ownerID, status string) error
}

type mongoLostPetRepo struct {
	coll *mongo.Collection
}

// NewMongoLostPetRepo constructs a new MongoDB LostPetRepository.
func NewMongoLostPetRepo() LostPetRepository {
	return &mongoLostPetRepo{coll: database.DB().Collection("lost_pets")}
}
