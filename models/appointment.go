package models

import "time"

// Appointment statuses and modes.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"

	ModeInPerson = "in_person"
	ModeVideo    = "video"
)

// Appointment is a confirmed booking of a pet against a vet's slot.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`
	PetID       string    `bson:"pet_id" json:"pet_id"`
	VetID       string    `bson:"vet_id" json:"vet_id"`
	SlotID      string    `bson:"slot_id,omitempty" json:"slot_id,omitempty"`
	ScheduledAt time.Time `bson:"scheduled_at" json:"scheduled_at"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	Mode        string    `bson:"appointment_mode" json:"appointment_mode"`
	Status      string    `bson:"status" json:"status"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// VideoSession is the video-consultation record attached to a video appointment.
type VideoSession struct {
	ID             string    `bson:"id" json:"id"`
	AppointmentID  string    `bson:"appointment_id" json:"appointment_id"`
	PetID          string    `bson:"pet_id" json:"pet_id"`
	PetOwnerID     string    `bson:"pet_owner_id" json:"pet_owner_id"`
	VetID          string    `bson:"vet_id" json:"vet_id"`
	ScheduledStart time.Time `bson:"scheduled_start" json:"scheduled_start"`
	Status         string    `bson:"status" json:"status"`
	SessionURL     string    `bson:"session_url" json:"session_url"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// BookAppointmentRequest is the booking API payload.
type BookAppointmentRequest struct {
	PetID       string `json:"pet_id" binding:"required"`
	VetID       string `json:"vet_id" binding:"required"`
	SlotID      string `json:"slot_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Mode        string `json:"appointment_type"`
	Notes       string `json:"notes"`
}

// BookedAppointment is the booking response: the appointment plus a
// human-readable time range ("09:00 - 09:30").
type BookedAppointment struct {
	Appointment
	Time string `json:"time"`
}
