package petRepo

import (
	"context"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PetRepository defines methods for pet profile and health data access.
type PetRepository interface {
	Create(ctx context.Context, pet *models.Pet) error
	// GetOwned returns the pet only when it belongs to ownerID.
	GetOwned(ctx context.Context, petID, ownerID string) (*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, petID, ownerID string) error

	// Health hub.
	AddHealthRecord(ctx context.Context, rec *models.HealthRecord) error
	AddVaccination(ctx context.Context, v *models.Vaccination) error
	AddHealthMetric(ctx context.Context, m *models.HealthMetric) error
	AddHealthAlert(ctx context.Context, a *models.HealthAlert) error
	AddBehaviorLog(ctx context.Context, b *models.BehaviorLog) error
	ListHealthRecords(ctx context.Context, petID string) ([]models.HealthRecord, error)
	ListVaccinations(ctx context.Context, petID string) ([]models.Vaccination, error)
	ListHealthMetricsSince(ctx context.Context, petID string, sinceDays int) ([]models.HealthMetric, error)
	ListActiveHealthAlerts(ctx context.Context, petID string) ([]models.HealthAlert, error)
	ListBehaviorLogsSince(ctx context.Context, petID string, sinceDays int) ([]models.BehaviorLog, error)
}

type mongoPetRepo struct {
	pets         *mongo.Collection
	records      *mongo.Collection
	vaccinations *mongo.Collection
	metrics      *mongo.Collection
	alerts       *mongo.Collection
	behaviors    *mongo.Collection
}

// NewMongoPetRepo constructs a new MongoDB PetRepository.
func NewMongoPetRepo() PetRepository {
	db := database.DB()
	r := &mongoPetRepo{
		pets:         db.Collection("pets"),
		records:      db.Collection("health_records"),
		vaccinations: db.Collection("vaccinations"),
		metrics:      db.Collection("health_metrics"),
		alerts:       db.Collection("health_alerts"),
		behaviors:    db.Collection("behavior_logs"),
	}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
