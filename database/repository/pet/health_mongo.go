package petRepo

import (
	"context"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoPetRepo) AddHealthRecord(ctx context.Context, rec *models.HealthRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.records.InsertOne(ctx, rec)
	return err
}

func (r *mongoPetRepo) AddVaccination(ctx context.Context, v *models.Vaccination) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.vaccinations.InsertOne(ctx, v)
	return err
}

func (r *mongoPetRepo) AddHealthMetric(ctx context.Context, m *models.HealthMetric) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.metrics.InsertOne(ctx, m)
	return err
}

func (r *mongoPetRepo) AddHealthAlert(ctx context.Context, a *models.HealthAlert) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.alerts.InsertOne(ctx, a)
	return err
}

func (r *mongoPetRepo) AddBehaviorLog(ctx context.Context, b *models.BehaviorLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := r.behaviors.InsertOne(ctx, b)
	return err
}

func (r *mongoPetRepo) ListHealthRecords(ctx context.Context, petID string) ([]models.HealthRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.records.Find(ctx, bson.M{"pet_id": petID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []models.HealthRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *mongoPetRepo) ListVaccinations(ctx context.Context, petID string) ([]models.Vaccination, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.vaccinations.Find(ctx, bson.M{"pet_id": petID},
		options.Find().SetSort(bson.D{{Key: "date_administered", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vaccs []models.Vaccination
	if err := cursor.All(ctx, &vaccs); err != nil {
		return nil, err
	}
	return vaccs, nil
}

func (r *mongoPetRepo) ListHealthMetricsSince(ctx context.Context, petID string, sinceDays int) ([]models.HealthMetric, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	since := time.Now().AddDate(0, 0, -sinceDays)
	filter := bson.M{"pet_id": petID, "recorded_at": bson.M{"$gte": since}}
	cursor, err := r.metrics.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "recorded_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var metrics []models.HealthMetric
	if err := cursor.All(ctx, &metrics); err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *mongoPetRepo) ListActiveHealthAlerts(ctx context.Context, petID string) ([]models.HealthAlert, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"pet_id": petID, "status": "active"}
	cursor, err := r.alerts.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var alerts []models.HealthAlert
	if err := cursor.All(ctx, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *mongoPetRepo) ListBehaviorLogsSince(ctx context.Context, petID string, sinceDays int) ([]models.BehaviorLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	since := time.Now().AddDate(0, 0, -sinceDays)
	filter := bson.M{"pet_id": petID, "logged_at": bson.M{"$gte": since}}
	cursor, err := r.behaviors.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "logged_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var logs []models.BehaviorLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}
