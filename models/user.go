package models

import "time"

// User roles.
const (
	RolePetOwner = "pet_owner"
	RoleVet      = "vet"
	RoleAdmin    = "admin"
)

// User represents an account on the platform: pet owner, veterinarian, or admin.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// VetProfile is the enriched directory view of a veterinarian.
type VetProfile struct {
	ID                    string  `bson:"id" json:"id"`
	Name                  string  `bson:"name" json:"name"`
	Email                 string  `bson:"email" json:"email"`
	Phone                 string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Specialization        string  `bson:"specialization" json:"specialization"`
	ClinicName            string  `bson:"clinic_name" json:"clinic_name"`
	Location              string  `bson:"location" json:"location"`
	ExperienceYears       int     `bson:"experience_years" json:"experience_years"`
	Rating                float64 `bson:"rating" json:"rating"`
	VideoConsultAvailable bool    `bson:"video_consultation_available" json:"video_consultation_available"`
}
