package pet

import (
	"context"
	"fmt"
	"time"

	"purrfect/models"

	"github.com/google/uuid"
)

// metricsWindowDays bounds how far back the insight series reach.
const metricsWindowDays = 30

func (s *DefaultPetService) GetHealthSummary(ctx context.Context, petID, ownerID string) (*models.PetHealthSummary, error) {
	p, err := s.Repo.GetOwned(ctx, petID, ownerID)
	if err != nil {
		return nil, &NotFoundError{Message: "pet not found or access denied"}
	}

	records, err := s.Repo.ListHealthRecords(ctx, petID)
	if err != nil {
		return nil, err
	}
	vaccinations, err := s.Repo.ListVaccinations(ctx, petID)
	if err != nil {
		return nil, err
	}
	metrics, err := s.Repo.ListHealthMetricsSince(ctx, petID, metricsWindowDays)
	if err != nil {
		return nil, err
	}
	alerts, err := s.Repo.ListActiveHealthAlerts(ctx, petID)
	if err != nil {
		return nil, err
	}
	behaviors, err := s.Repo.ListBehaviorLogsSince(ctx, petID, metricsWindowDays)
	if err != nil {
		return nil, err
	}

	return &models.PetHealthSummary{
		Pet:           *p,
		HealthRecords: records,
		Vaccinations:  vaccinations,
		HealthMetrics: metrics,
		HealthAlerts:  alerts,
		BehaviorLogs:  behaviors,
		Insights:      computeInsights(records, vaccinations, metrics, alerts),
	}, nil
}

// computeInsights derives the read-time aggregates. The weight trend compares
// the newest and oldest samples in the window; activity and eating are plain
// averages over the window.
func computeInsights(records []models.HealthRecord, vaccinations []models.Vaccination, metrics []models.HealthMetric, alerts []models.HealthAlert) models.HealthInsights {
	ins := models.HealthInsights{
		WeightTrend:          "unknown",
		UpcomingVaccinations: []models.Vaccination{},
		ActiveAlerts:         len(alerts),
	}

	var weights []models.HealthMetric
	var activitySum, eatingSum float64
	var activityN, eatingN int
	for _, m := range metrics {
		switch m.MetricType {
		case models.MetricWeight:
			weights = append(weights, m)
		case models.MetricActivity:
			activitySum += m.Value
			activityN++
		case models.MetricEating:
			eatingSum += m.Value
			eatingN++
		}
	}

	if len(weights) >= 2 {
		first, last := weights[0], weights[0]
		for _, w := range weights[1:] {
			if w.RecordedAt.Before(first.RecordedAt) {
				first = w
			}
			if w.RecordedAt.After(last.RecordedAt) {
				last = w
			}
		}
		diff := last.Value - first.Value
		switch {
		case diff > 0.5:
			ins.WeightTrend = "increasing"
		case diff < -0.5:
			ins.WeightTrend = "decreasing"
		default:
			ins.WeightTrend = "stable"
		}
	}

	if activityN > 0 {
		ins.ActivityLevel = activitySum / float64(activityN)
	}
	if eatingN > 0 {
		ins.EatingPattern = eatingSum / float64(eatingN)
	}

	for _, r := range records {
		if ins.LastCheckup == nil || r.Date.After(*ins.LastCheckup) {
			d := r.Date
			ins.LastCheckup = &d
		}
	}

	now := time.Now()
	horizon := now.AddDate(0, 0, 30)
	for _, v := range vaccinations {
		if v.NextDueDate != nil && v.NextDueDate.After(now) && v.NextDueDate.Before(horizon) {
			ins.UpcomingVaccinations = append(ins.UpcomingVaccinations, v)
		}
	}

	return ins
}

func (s *DefaultPetService) AddHealthEntry(ctx context.Context, petID, ownerID, kind string, entry HealthEntryInput) error {
	if _, err := s.Repo.GetOwned(ctx, petID, ownerID); err != nil {
		return &NotFoundError{Message: "pet not found or access denied"}
	}

	now := time.Now()
	switch kind {
	case models.HealthEntryRecord:
		if entry.RecordType == "" || entry.Description == "" {
			return &ValidationError{Message: "record type and description are required"}
		}
		date := now
		if entry.Date != "" {
			d, err := time.Parse("2006-01-02", entry.Date)
			if err != nil {
				return &ValidationError{Message: fmt.Sprintf("invalid date %q", entry.Date)}
			}
			date = d
		}
		return s.Repo.AddHealthRecord(ctx, &models.HealthRecord{
			ID:          uuid.New().String(),
			PetID:       petID,
			Date:        date,
			RecordType:  entry.RecordType,
			Description: entry.Description,
			VetName:     entry.VetName,
			CreatedAt:   now,
		})

	case models.HealthEntryVaccination:
		if entry.VaccineName == "" {
			return &ValidationError{Message: "vaccine name is required"}
		}
		v := &models.Vaccination{
			ID:               uuid.New().String(),
			PetID:            petID,
			VaccineName:      entry.VaccineName,
			DateAdministered: now,
			CreatedAt:        now,
		}
		if entry.Date != "" {
			d, err := time.Parse("2006-01-02", entry.Date)
			if err != nil {
				return &ValidationError{Message: fmt.Sprintf("invalid date %q", entry.Date)}
			}
			v.DateAdministered = d
		}
		if entry.NextDueDate != "" {
			d, err := time.Parse("2006-01-02", entry.NextDueDate)
			if err != nil {
				return &ValidationError{Message: fmt.Sprintf("invalid next due date %q", entry.NextDueDate)}
			}
			v.NextDueDate = &d
		}
		return s.Repo.AddVaccination(ctx, v)

	case models.HealthEntryMetric:
		switch entry.MetricType {
		case models.MetricWeight, models.MetricActivity, models.MetricEating:
		default:
			return &ValidationError{Message: fmt.Sprintf("unknown metric type %q", entry.MetricType)}
		}
		return s.Repo.AddHealthMetric(ctx, &models.HealthMetric{
			ID:         uuid.New().String(),
			PetID:      petID,
			MetricType: entry.MetricType,
			Value:      entry.Value,
			Unit:       entry.Unit,
			RecordedAt: now,
		})

	case models.HealthEntryAlert:
		if entry.AlertType == "" || entry.Message == "" {
			return &ValidationError{Message: "alert type and message are required"}
		}
		severity := entry.Severity
		if severity == "" {
			severity = "medium"
		}
		return s.Repo.AddHealthAlert(ctx, &models.HealthAlert{
			ID:        uuid.New().String(),
			PetID:     petID,
			AlertType: entry.AlertType,
			Severity:  severity,
			Message:   entry.Message,
			Status:    "active",
			CreatedAt: now,
		})

	case models.HealthEntryBehavior:
		if entry.Behavior == "" {
			return &ValidationError{Message: "behavior is required"}
		}
		return s.Repo.AddBehaviorLog(ctx, &models.BehaviorLog{
			ID:       uuid.New().String(),
			PetID:    petID,
			Behavior: entry.Behavior,
			Notes:    entry.Notes,
			LoggedAt: now,
		})

	default:
		return &ValidationError{Message: fmt.Sprintf("unknown health entry kind %q", kind)}
	}
}
