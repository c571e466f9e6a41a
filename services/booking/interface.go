package booking

import (
	"context"

	analyticsRepo "purrfect/database/repository/analytics"
	appointmentRepo "purrfect/database/repository/appointment"
	petRepo "purrfect/database/repository/pet"
	slotRepo "purrfect/database/repository/slot"
	"purrfect/models"
	"purrfect/services/notification"

	"go.uber.org/zap"
)

// BookingService coordinates slot reservation and appointment creation.
type BookingService interface {
	// BookAppointment validates the request, reserves a capacity unit on the
	// slot and creates the appointment. Side effects (video session,
	// notifications, analytics) are best-effort and never fail the booking.
	BookAppointment(ctx context.Context, ownerID string, req models.BookAppointmentRequest) (*models.BookedAppointment, error)
	// ListSlots returns a vet's slots for a date ordered by start time.
	ListSlots(ctx context.Context, vetID, date string) ([]models.Slot, error)
	// SetupSlots creates a vet's bookable windows for a date.
	SetupSlots(ctx context.Context, req models.SetupSlotsRequest) ([]string, error)
	// ListAppointmentsForOwner returns appointments across all the owner's pets.
	ListAppointmentsForOwner(ctx context.Context, ownerID string) ([]models.Appointment, error)
	// ListAppointmentsForVet returns a vet's appointments.
	ListAppointmentsForVet(ctx context.Context, vetID string) ([]models.Appointment, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	PetRepo         petRepo.PetRepository
	SlotRepo        slotRepo.SlotRepository
	AppointmentRepo appointmentRepo.AppointmentRepository
	Notifier        notification.NotificationService
	Analytics       analyticsRepo.AnalyticsRepository
	Logger          *zap.Logger
	VideoBaseURL    string
}
