package userRepo

import (
	"context"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// GetByRole retrieves all users with the given role, sorted by name.
	GetByRole(ctx context.Context, role string) ([]models.User, error)
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new MongoDB UserRepository.
func NewMongoUserRepo() UserRepository {
	r := &mongoUserRepo{coll: database.DB().Collection("users")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
