package models

// Slot types.
const (
	SlotTypeRegular   = "regular"
	SlotTypeEmergency = "emergency"
)

// Slot is a bookable time window for a veterinarian on a given date.
// Invariant: IsAvailable == (CurrentBookings < MaxBookings). Both fields are
// only ever changed together, server-side, by the booking reservation update.
type Slot struct {
	ID              string `bson:"id" json:"id"`
	VetID           string `bson:"vet_id" json:"vet_id"`
	Date            string `bson:"date" json:"date"`             // "2006-01-02"
	StartTime       string `bson:"start_time" json:"start_time"` // "09:00"
	EndTime         string `bson:"end_time" json:"end_time"`     // "09:30"
	SlotType        string `bson:"slot_type" json:"slot_type"`
	MaxBookings     int    `bson:"max_bookings" json:"max_bookings"`
	CurrentBookings int    `bson:"current_bookings" json:"current_bookings"`
	IsAvailable     bool   `bson:"is_available" json:"is_available"`
}

// SetupSlotsRequest defines the payload for creating a vet's slots for a date.
type SetupSlotsRequest struct {
	VetID string `json:"vet_id"`
	Date  string `json:"date" binding:"required"`
	Slots []Slot `json:"slots" binding:"required"`
}
