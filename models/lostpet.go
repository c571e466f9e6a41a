package models

import "time"

// Lost pet report statuses.
const (
	LostPetLost  = "lost"
	LostPetFound = "found"
)

// LostPet is a public lost-pet report.
type LostPet struct {
	ID             string    `bson:"id" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	PetName        string    `bson:"pet_name" json:"pet_name"`
	PetDescription string    `bson:"pet_description" json:"pet_description"`
	Location       string    `bson:"location" json:"location"`
	ContactInfo    string    `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	PhotoURL       string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	RewardAmount   float64   `bson:"reward_amount,omitempty" json:"reward_amount,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
