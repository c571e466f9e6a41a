package booking

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"
)

func (s *DefaultBookingService) ListSlots(ctx context.Context, vetID, date string) ([]models.Slot, error) {
	if vetID == "" || date == "" {
		return nil, &ValidationError{Message: "vet ID and date are required"}
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date)}
	}
	return s.SlotRepo.GetByVetAndDate(ctx, vetID, date)
}

func (s *DefaultBookingService) SetupSlots(ctx context.Context, req models.SetupSlotsRequest) ([]string, error) {
	if req.VetID == "" || req.Date == "" {
		return nil, &ValidationError{Message: "vet ID and date are required"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", req.Date)}
	}
	if len(req.Slots) == 0 {
		return nil, &ValidationError{Message: "at least one slot is required"}
	}

	slots := make([]models.Slot, 0, len(req.Slots))
	for i, sl := range req.Slots {
		if sl.StartTime == "" || sl.EndTime == "" {
			return nil, &ValidationError{Message: fmt.Sprintf("slot %d is missing start or end time", i)}
		}
		if _, err := time.Parse("15:04", sl.StartTime); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("slot %d has invalid start time %q", i, sl.StartTime)}
		}
		if _, err := time.Parse("15:04", sl.EndTime); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("slot %d has invalid end time %q", i, sl.EndTime)}
		}
		if sl.MaxBookings <= 0 {
			sl.MaxBookings = 1
		}
		if sl.SlotType == "" {
			sl.SlotType = models.SlotTypeRegular
		}
		sl.VetID = req.VetID
		sl.Date = req.Date
		sl.CurrentBookings = 0
		slots = append(slots, sl)
	}

	return s.SlotRepo.CreateMany(ctx, slots)
}

func (s *DefaultBookingService) ListAppointmentsForOwner(ctx context.Context, ownerID string) ([]models.Appointment, error) {
	pets, err := s.PetRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return []models.Appointment{}, nil
	}
	petIDs := make([]string, len(pets))
	for i, p := range pets {
		petIDs[i] = p.ID
	}
	return s.AppointmentRepo.ListByPetIDs(ctx, petIDs)
}

func (s *DefaultBookingService) ListAppointmentsForVet(ctx context.Context, vetID string) ([]models.Appointment, error) {
	return s.AppointmentRepo.ListByVet(ctx, vetID)
}
