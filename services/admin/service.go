package admin

import (
	"context"
	"fmt"
	"time"

	analyticsRepo "purrfect/database/repository/analytics"
	userRepo "purrfect/database/repository/user"
	"purrfect/models"
)

// ValidationError signals a malformed analytics window.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AdminService exposes platform-wide views for administrators.
type AdminService interface {
	// Summary aggregates event counts over [from, to]. Zero times default to
	// the last 30 days.
	Summary(ctx context.Context, from, to string) (*models.AnalyticsSummary, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Analytics analyticsRepo.AnalyticsRepository
	Users     userRepo.UserRepository
}

func (s *DefaultAdminService) Summary(ctx context.Context, from, to string) (*models.AnalyticsSummary, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid from date %q, expected YYYY-MM-DD", from)}
		}
		start = t
	}
	if to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid to date %q, expected YYYY-MM-DD", to)}
		}
		// Inclusive end of day.
		end = t.Add(24*time.Hour - time.Nanosecond)
	}
	if end.Before(start) {
		return nil, &ValidationError{Message: "to must not be before from"}
	}

	return s.Analytics.Summarize(ctx, start, end)
}

func (s *DefaultAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.GetAll(ctx)
}
