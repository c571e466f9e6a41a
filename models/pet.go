package models

import "time"

// Pet is a pet profile owned by a single user.
type Pet struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	Name           string    `bson:"name" json:"name"`
	Species        string    `bson:"species,omitempty" json:"species,omitempty"`
	Breed          string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Age            int       `bson:"age,omitempty" json:"age,omitempty"`
	Weight         float64   `bson:"weight,omitempty" json:"weight,omitempty"`
	HealthStatus   string    `bson:"health_status,omitempty" json:"health_status,omitempty"`
	MedicalHistory string    `bson:"medical_history,omitempty" json:"medical_history,omitempty"`
	PhotoURL       string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
