package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.appointments.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *mongoAppointmentRepo) ListByPetIDs(ctx context.Context, petIDs []string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(petIDs) == 0 {
		return []models.Appointment{}, nil
	}

	filter := bson.M{"pet_id": bson.M{"$in": petIDs}}
	cursor, err := r.appointments.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) ListByVet(ctx context.Context, vetID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.appointments.Find(ctx, bson.M{"vet_id": vetID},
		options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) CreateVideoSession(ctx context.Context, vs *models.VideoSession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.videos.InsertOne(ctx, vs); err != nil {
		return fmt.Errorf("failed to insert video session: %w", err)
	}
	return nil
}

func (r *mongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := r.appointments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "pet_id", Value: 1}}},
		{Keys: bson.D{{Key: "vet_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	if _, err := r.videos.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "appointment_id", Value: 1}},
	}); err != nil {
		return fmt.Errorf("failed to create video session indexes: %w", err)
	}
	return nil
}
