package models

import "time"

// AnalyticsEvent is an append-only product event.
type AnalyticsEvent struct {
	ID        string         `bson:"id" json:"id"`
	EventType string         `bson:"event_type" json:"event_type"`
	UserID    string         `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"created_at"`
}

// AnalyticsSummary aggregates event counts over a window.
type AnalyticsSummary struct {
	From        time.Time        `json:"from"`
	To          time.Time        `json:"to"`
	TotalEvents int64            `json:"totalEvents"`
	ByType      map[string]int64 `json:"byType"`
}
