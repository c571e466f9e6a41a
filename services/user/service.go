package user

import (
	"context"
	"strings"
	"time"

	"purrfect/models"
	"purrfect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 72 * time.Hour

func (s *DefaultUserService) Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "name, email and password are required"}
	}
	if len(req.Password) < 8 {
		return nil, &ValidationError{Message: "password must be at least 8 characters"}
	}

	role := req.Role
	if role == "" {
		role = models.RolePetOwner
	}
	if role != models.RolePetOwner && role != models.RoleVet {
		return nil, &ValidationError{Message: "role must be pet_owner or vet"}
	}

	if existing, _ := s.Repo.GetByEmail(ctx, email); existing != nil {
		return nil, &ConflictError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        req.Phone,
		Address:      req.Address,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		// The unique email index closes the check-then-insert race.
		if strings.Contains(err.Error(), "duplicate") {
			return nil, &ConflictError{Message: "an account with this email already exists"}
		}
		return nil, err
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("userId", u.ID), zap.String("role", u.Role))
	return &models.AuthResponse{User: *u, Token: token}, nil
}

func (s *DefaultUserService) Login(ctx context.Context, req LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, &ValidationError{Message: "email and password are required"}
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, tokenLifetime)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: *u, Token: token}, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, &NotFoundError{Message: "user not found"}
	}
	return u, nil
}

func (s *DefaultUserService) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, &NotFoundError{Message: "user not found"}
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Address != "" {
		u.Address = req.Address
	}
	u.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
