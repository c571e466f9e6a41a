package vet

import (
	"context"
	"encoding/json"
	"time"

	userRepo "purrfect/database/repository/user"
	"purrfect/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	directoryCacheKey = "vets:directory"
	directoryCacheTTL = 5 * time.Minute
)

// VetService is the veterinarian directory, backed by the users collection
// and cached in Redis.
type VetService interface {
	// ListVets returns all vet accounts sorted by name. Reads go through the
	// cache; a cache miss or a broken Redis falls back to the database.
	ListVets(ctx context.Context) ([]models.User, error)
}

// DefaultVetService is the production implementation.
type DefaultVetService struct {
	Users  userRepo.UserRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

func (s *DefaultVetService) ListVets(ctx context.Context) ([]models.User, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, directoryCacheKey).Result(); err == nil {
			var vets []models.User
			if jerr := json.Unmarshal([]byte(raw), &vets); jerr == nil {
				return vets, nil
			}
		} else if err != redis.Nil {
			s.Logger.Warn("vet directory cache read failed", zap.Error(err))
		}
	}

	vets, err := s.Users.GetByRole(ctx, models.RoleVet)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if raw, jerr := json.Marshal(vets); jerr == nil {
			if err := s.Cache.Set(ctx, directoryCacheKey, raw, directoryCacheTTL).Err(); err != nil {
				s.Logger.Warn("vet directory cache write failed", zap.Error(err))
			}
		}
	}

	return vets, nil
}
