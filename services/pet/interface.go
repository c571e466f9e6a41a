package pet

import (
	"context"

	petRepo "purrfect/database/repository/pet"
	"purrfect/models"

	"go.uber.org/zap"
)

// PetService manages pet profiles and the per-pet health hub.
type PetService interface {
	CreatePet(ctx context.Context, ownerID string, pet models.Pet) (*models.Pet, error)
	GetPet(ctx context.Context, petID, ownerID string) (*models.Pet, error)
	ListPets(ctx context.Context, ownerID string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, ownerID string, pet models.Pet) (*models.Pet, error)
	DeletePet(ctx context.Context, petID, ownerID string) error

	// GetHealthSummary assembles the full health hub view for one pet:
	// records, vaccinations, recent metrics, active alerts, behavior logs,
	// plus insights computed from the raw series.
	GetHealthSummary(ctx context.Context, petID, ownerID string) (*models.PetHealthSummary, error)
	// AddHealthEntry appends one entry of the given kind to the pet's
	// health data. Ownership is checked before any write.
	AddHealthEntry(ctx context.Context, petID, ownerID, kind string, entry HealthEntryInput) error
}

// HealthEntryInput is the union payload for the health hub append endpoint.
// Which fields apply depends on the entry kind.
type HealthEntryInput struct {
	Date        string  `json:"date"`
	RecordType  string  `json:"record_type"`
	Description string  `json:"description"`
	VetName     string  `json:"vet_name"`

	VaccineName string `json:"vaccine_name"`
	NextDueDate string `json:"next_due_date"`

	MetricType string  `json:"metric_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`

	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`

	Behavior string `json:"behavior"`
	Notes    string `json:"notes"`
}

// DefaultPetService is the production implementation.
type DefaultPetService struct {
	Repo   petRepo.PetRepository
	Logger *zap.Logger
}
