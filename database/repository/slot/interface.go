package slotRepo

import (
	"context"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository defines read and setup access to appointment slots. Capacity
// reservation is the booking transaction's job (see appointmentRepo); nothing
// else may mutate current_bookings or is_available.
type SlotRepository interface {
	// CreateMany inserts a batch of slots, assigning IDs where missing.
	CreateMany(ctx context.Context, slots []models.Slot) ([]string, error)
	// GetByVetAndDate returns a vet's slots for a date ordered by start time.
	GetByVetAndDate(ctx context.Context, vetID, date string) ([]models.Slot, error)
	// GetBookable returns the slot only when it matches vet and date and is
	// still flagged available.
	GetBookable(ctx context.Context, slotID, vetID, date string) (*models.Slot, error)
	// GetByID retrieves a slot regardless of availability.
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	r := &mongoSlotRepo{coll: database.DB().Collection("appointment_slots")}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
