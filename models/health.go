package models

import "time"

// Health entry kinds accepted by the health hub append endpoint.
const (
	HealthEntryRecord      = "health_record"
	HealthEntryVaccination = "vaccination"
	HealthEntryMetric      = "health_metric"
	HealthEntryAlert       = "health_alert"
	HealthEntryBehavior    = "behavior_log"
)

// HealthRecord is a vet visit or treatment entry.
type HealthRecord struct {
	ID          string    `bson:"id" json:"id"`
	PetID       string    `bson:"pet_id" json:"pet_id"`
	Date        time.Time `bson:"date" json:"date"`
	RecordType  string    `bson:"record_type" json:"record_type"`
	Description string    `bson:"description" json:"description"`
	VetName     string    `bson:"vet_name,omitempty" json:"vet_name,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Vaccination tracks an administered vaccine and its next due date.
type Vaccination struct {
	ID               string     `bson:"id" json:"id"`
	PetID            string     `bson:"pet_id" json:"pet_id"`
	VaccineName      string     `bson:"vaccine_name" json:"vaccine_name"`
	DateAdministered time.Time  `bson:"date_administered" json:"date_administered"`
	NextDueDate      *time.Time `bson:"next_due_date,omitempty" json:"next_due_date,omitempty"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
}

// Metric types with insight aggregation.
const (
	MetricWeight   = "weight"
	MetricActivity = "activity"
	MetricEating   = "eating"
)

// HealthMetric is a single measurement (weight, activity, eating).
type HealthMetric struct {
	ID         string    `bson:"id" json:"id"`
	PetID      string    `bson:"pet_id" json:"pet_id"`
	MetricType string    `bson:"metric_type" json:"metric_type"`
	Value      float64   `bson:"value" json:"value"`
	Unit       string    `bson:"unit,omitempty" json:"unit,omitempty"`
	RecordedAt time.Time `bson:"recorded_at" json:"recorded_at"`
}

// HealthAlert flags a condition needing owner attention.
type HealthAlert struct {
	ID        string    `bson:"id" json:"id"`
	PetID     string    `bson:"pet_id" json:"pet_id"`
	AlertType string    `bson:"alert_type" json:"alert_type"`
	Severity  string    `bson:"severity" json:"severity"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"` // "active" or "resolved"
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// BehaviorLog is an owner-recorded behavior observation.
type BehaviorLog struct {
	ID       string    `bson:"id" json:"id"`
	PetID    string    `bson:"pet_id" json:"pet_id"`
	Behavior string    `bson:"behavior" json:"behavior"`
	Notes    string    `bson:"notes,omitempty" json:"notes,omitempty"`
	LoggedAt time.Time `bson:"logged_at" json:"logged_at"`
}

// HealthInsights is computed from the raw series on read.
type HealthInsights struct {
	WeightTrend          string        `json:"weightTrend"` // "increasing", "decreasing", "stable", "unknown"
	ActivityLevel        float64       `json:"activityLevel"`
	EatingPattern        float64       `json:"eatingPattern"`
	LastCheckup          *time.Time    `json:"lastCheckup,omitempty"`
	UpcomingVaccinations []Vaccination `json:"upcomingVaccinations"`
	ActiveAlerts         int           `json:"activeAlerts"`
}

// PetHealthSummary is the health hub read model for one pet.
type PetHealthSummary struct {
	Pet           Pet            `json:"pet"`
	HealthRecords []HealthRecord `json:"healthRecords"`
	Vaccinations  []Vaccination  `json:"vaccinations"`
	HealthMetrics []HealthMetric `json:"healthMetrics"`
	HealthAlerts  []HealthAlert  `json:"healthAlerts"`
	BehaviorLogs  []BehaviorLog  `json:"behaviorLogs"`
	Insights      HealthInsights `json:"healthInsights"`
}
