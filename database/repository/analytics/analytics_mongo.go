package analyticsRepo

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoAnalyticsRepo) Record(ctx context.Context, ev *models.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, ev); err != nil {
		return fmt.Errorf("failed to insert analytics event: %w", err)
	}
	return nil
}

// Summarize counts events per type within [from, to] using an aggregation
// pipeline.
func (r *mongoAnalyticsRepo) Summarize(ctx context.Context, from, to time.Time) (*models.AnalyticsSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": from, "$lte": to}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$event_type",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating analytics events: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		EventType string `bson:"_id"`
		Count     int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding analytics aggregation: %w", err)
	}

	summary := &models.AnalyticsSummary{
		From:   from,
		To:     to,
		ByType: make(map[string]int64, len(results)),
	}
	for _, res := range results {
		summary.ByType[res.EventType] = res.Count
		summary.TotalEvents += res.Count
	}
	return summary, nil
}
