package analyticsRepo

import (
	"context"
	"time"

	"purrfect/database"
	"purrfect/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AnalyticsRepository stores append-only product events and aggregates them
// for the admin dashboard.
type AnalyticsRepository interface {
	Record(ctx context.Context, ev *models.AnalyticsEvent) error
	Summarize(ctx context.Context, from, to time.Time) (*models.AnalyticsSummary, error)
}

type mongoAnalyticsRepo struct {
	coll *mongo.Collection
}

// NewMongoAnalyticsRepo constructs a new MongoDB AnalyticsRepository.
func NewMongoAnalyticsRepo() AnalyticsRepository {
	return &mongoAnalyticsRepo{coll: database.DB().Collection("analytics_events")}
}
