package user

import (
	"context"

	userRepo "purrfect/database/repository/user"
	"purrfect/models"

	"go.uber.org/zap"
)

// UserService handles registration, login and account lookups.
type UserService interface {
	// Register creates an account, hashes the password and returns the user
	// with a signed token. A duplicate email is a ConflictError.
	Register(ctx context.Context, req RegisterRequest) (*models.AuthResponse, error)
	// Login verifies credentials and returns the user with a signed token.
	Login(ctx context.Context, req LoginRequest) (*models.AuthResponse, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (*models.User, error)
}

// RegisterRequest is the registration API payload.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// LoginRequest is the login API payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the editable profile fields.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
