package appointmentRepo

import (
	"context"
	"errors"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrSlotUnavailable is returned when the conditional capacity reservation
// matches no slot: either the slot filled up between read and write, or it
// never matched the vet/date at all. Either way the booking must not proceed.
var ErrSlotUnavailable = errors.New("slot unavailable or capacity exhausted")

// AppointmentRepository persists appointments and the capacity reservation
// against the referenced slot.
type AppointmentRepository interface {
	// Book inserts the appointment and reserves one capacity unit on the slot
	// in a single transaction. The reservation is a conditional update that
	// fails with ErrSlotUnavailable when the slot has no remaining capacity,
	// which aborts the appointment insert as well.
	Book(ctx context.Context, appt *models.Appointment, date string) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPetIDs(ctx context.Context, petIDs []string) ([]models.Appointment, error)
	ListByVet(ctx context.Context, vetID string) ([]models.Appointment, error)
	// CreateVideoSession stores the video-consultation record for a video
	// appointment. Append-only from the booking flow's perspective.
	CreateVideoSession(ctx context.Context, vs *models.VideoSession) error
}

type mongoAppointmentRepo struct {
	appointments *mongo.Collection
	slots        *mongo.Collection
	videos       *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
// It owns both the appointments and slots collections so the booking
// transaction can span them.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.DB()
	r := &mongoAppointmentRepo{
		appointments: db.Collection("appointments"),
		slots:        db.Collection("appointment_slots"),
		videos:       db.Collection("video_consultations"),
	}
	if err := r.ensureIndexes(); err != nil {
		panic(err)
	}
	return r
}
