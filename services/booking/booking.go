package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "purrfect/database/repository/appointment"
	"purrfect/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultBookingService) BookAppointment(ctx context.Context, ownerID string, req models.BookAppointmentRequest) (*models.BookedAppointment, error) {
	if req.PetID == "" || req.VetID == "" || req.SlotID == "" || req.ServiceType == "" || req.Date == "" {
		return nil, &ValidationError{Message: "pet ID, vet ID, slot ID, service type, and date are required"}
	}
	mode := req.Mode
	if mode == "" {
		mode = models.ModeInPerson
	}
	if mode != models.ModeInPerson && mode != models.ModeVideo {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown appointment type %q", mode)}
	}

	// Ownership check before any write.
	pet, err := s.PetRepo.GetOwned(ctx, req.PetID, ownerID)
	if err != nil {
		return nil, &NotFoundError{Message: "pet not found or access denied"}
	}

	// The availability read is advisory: the authoritative check is the
	// conditional reservation inside the booking transaction.
	slot, err := s.SlotRepo.GetBookable(ctx, req.SlotID, req.VetID, req.Date)
	if err != nil {
		return nil, &ConflictError{Message: "time slot not available"}
	}

	scheduledAt, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+slot.StartTime, time.Local)
	if err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid slot time %q on %q", slot.StartTime, req.Date)}
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		PetID:       req.PetID,
		VetID:       req.VetID,
		SlotID:      req.SlotID,
		ScheduledAt: scheduledAt,
		ServiceType: req.ServiceType,
		Mode:        mode,
		Status:      models.AppointmentScheduled,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.AppointmentRepo.Book(ctx, appt, req.Date); err != nil {
		if err == appointmentRepo.ErrSlotUnavailable {
			return nil, &ConflictError{Message: "time slot not available"}
		}
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	s.runSideEffects(ctx, ownerID, pet, appt, slot)

	return &models.BookedAppointment{
		Appointment: *appt,
		Time:        fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime),
	}, nil
}

// runSideEffects performs the post-booking extras: video session, the two
// notifications and the analytics event. Failures are logged and swallowed;
// the appointment stands regardless.
func (s *DefaultBookingService) runSideEffects(ctx context.Context, ownerID string, pet *models.Pet, appt *models.Appointment, slot *models.Slot) {
	dateStr := appt.ScheduledAt.Format("02 Jan 2006")

	if appt.Mode == models.ModeVideo {
		vs := &models.VideoSession{
			ID:             uuid.New().String(),
			AppointmentID:  appt.ID,
			PetID:          appt.PetID,
			PetOwnerID:     ownerID,
			VetID:          appt.VetID,
			ScheduledStart: appt.ScheduledAt,
			Status:         models.AppointmentScheduled,
		}
		vs.SessionURL = fmt.Sprintf("%s/%s", s.VideoBaseURL, vs.ID)
		if err := s.AppointmentRepo.CreateVideoSession(ctx, vs); err != nil {
			s.Logger.Error("failed to create video session",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	ownerMsg := fmt.Sprintf("Your appointment for %s has been scheduled for %s at %s",
		pet.Name, dateStr, slot.StartTime)
	if err := s.Notifier.Notify(ctx, ownerID, "Appointment Confirmed", ownerMsg, "appointment", map[string]any{
		"appointment_id":   appt.ID,
		"appointment_type": appt.Mode,
		"date":             appt.ScheduledAt,
	}); err != nil {
		s.Logger.Error("failed to notify owner", zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	vetMsg := fmt.Sprintf("New %s appointment scheduled for %s at %s",
		appt.Mode, dateStr, slot.StartTime)
	if err := s.Notifier.Notify(ctx, appt.VetID, "New Appointment Booked", vetMsg, "appointment", map[string]any{
		"appointment_id": appt.ID,
		"pet_name":       pet.Name,
	}); err != nil {
		s.Logger.Error("failed to notify vet", zap.String("appointmentId", appt.ID), zap.Error(err))
	}

	ev := &models.AnalyticsEvent{
		ID:        uuid.New().String(),
		EventType: "appointment_booked",
		UserID:    ownerID,
		Data: map[string]any{
			"appointment_id":   appt.ID,
			"appointment_type": appt.Mode,
			"service_type":     appt.ServiceType,
			"vet_id":           appt.VetID,
		},
		CreatedAt: time.Now(),
	}
	if err := s.Analytics.Record(ctx, ev); err != nil {
		s.Logger.Error("failed to record analytics event", zap.String("appointmentId", appt.ID), zap.Error(err))
	}
}
