package pet

import (
	"context"
	"time"

	"purrfect/models"

	"github.com/google/uuid"
)

func (s *DefaultPetService) CreatePet(ctx context.Context, ownerID string, p models.Pet) (*models.Pet, error) {
	if p.Name == "" {
		return nil, &ValidationError{Message: "pet name is required"}
	}
	p.ID = uuid.New().String()
	p.UserID = ownerID
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	if err := s.Repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *DefaultPetService) GetPet(ctx context.Context, petID, ownerID string) (*models.Pet, error) {
	p, err := s.Repo.GetOwned(ctx, petID, ownerID)
	if err != nil {
		return nil, &NotFoundError{Message: "pet not found or access denied"}
	}
	return p, nil
}

func (s *DefaultPetService) ListPets(ctx context.Context, ownerID string) ([]models.Pet, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *DefaultPetService) UpdatePet(ctx context.Context, ownerID string, p models.Pet) (*models.Pet, error) {
	existing, err := s.Repo.GetOwned(ctx, p.ID, ownerID)
	if err != nil {
		return nil, &NotFoundError{Message: "pet not found or access denied"}
	}

	if p.Name != "" {
		existing.Name = p.Name
	}
	if p.Species != "" {
		existing.Species = p.Species
	}
	if p.Breed != "" {
		existing.Breed = p.Breed
	}
	if p.Age > 0 {
		existing.Age = p.Age
	}
	if p.Weight > 0 {
		existing.Weight = p.Weight
	}
	if p.HealthStatus != "" {
		existing.HealthStatus = p.HealthStatus
	}
	if p.MedicalHistory != "" {
		existing.MedicalHistory = p.MedicalHistory
	}
	if p.PhotoURL != "" {
		existing.PhotoURL = p.PhotoURL
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultPetService) DeletePet(ctx context.Context, petID, ownerID string) error {
	if err := s.Repo.Delete(ctx, petID, ownerID); err != nil {
		return &NotFoundError{Message: "pet not found or access denied"}
	}
	return nil
}
