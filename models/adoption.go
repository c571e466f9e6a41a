package models

import "time"

// Adoption listing statuses.
const (
	ListingAvailable = "available"
	ListingPending   = "pending"
	ListingAdopted   = "adopted"
)

// AdoptionListing is a pet offered for adoption.
type AdoptionListing struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"user_id"`
	PetName           string    `bson:"pet_name" json:"pet_name"`
	Species           string    `bson:"species" json:"species"`
	Breed             string    `bson:"breed,omitempty" json:"breed,omitempty"`
	Age               int       `bson:"age,omitempty" json:"age,omitempty"`
	Gender            string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Size              string    `bson:"size,omitempty" json:"size,omitempty"`
	Temperament       string    `bson:"temperament,omitempty" json:"temperament,omitempty"`
	Description       string    `bson:"description" json:"description"`
	MedicalHistory    string    `bson:"medical_history,omitempty" json:"medical_history,omitempty"`
	VaccinationStatus string    `bson:"vaccination_status,omitempty" json:"vaccination_status,omitempty"`
	SpayedNeutered    bool      `bson:"spayed_neutered" json:"spayed_neutered"`
	GoodWithKids      bool      `bson:"good_with_kids" json:"good_with_kids"`
	GoodWithPets      bool      `bson:"good_with_pets" json:"good_with_pets"`
	EnergyLevel       string    `bson:"energy_level,omitempty" json:"energy_level,omitempty"`
	Photos            []string  `bson:"photos,omitempty" json:"photos,omitempty"`
	AdoptionFee       float64   `bson:"adoption_fee,omitempty" json:"adoption_fee,omitempty"`
	Location          string    `bson:"location" json:"location"`
	ContactPhone      string    `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	ContactEmail      string    `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}

// ListingFilter narrows the public adoption feed.
type ListingFilter struct {
	Species      string
	Breed        string
	Size         string
	Location     string
	MinAge       int
	MaxAge       int
	GoodWithKids bool
	GoodWithPets bool
	Page         int
	Limit        int
}

// ListingPage is a paginated slice of the adoption feed.
type ListingPage struct {
	Listings   []AdoptionListing `json:"listings"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int64             `json:"total"`
	TotalPages int               `json:"totalPages"`
}

// AdoptionApplication is one applicant's submission for a listing. A user may
// apply at most once per listing.
type AdoptionApplication struct {
	ID          string         `bson:"id" json:"id"`
	ListingID   string         `bson:"listing_id" json:"listing_id"`
	ApplicantID string         `bson:"applicant_id" json:"applicant_id"`
	Data        map[string]any `bson:"application_data" json:"application_data"`
	Status      string         `bson:"status" json:"status"`
	CreatedAt   time.Time      `bson:"created_at" json:"created_at"`
}
