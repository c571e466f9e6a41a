package pet

import (
	"testing"
	"time"

	"purrfect/models"

	"github.com/stretchr/testify/assert"
)

func weightMetric(value float64, daysAgo int) models.HealthMetric {
	return models.HealthMetric{
		MetricType: models.MetricWeight,
		Value:      value,
		RecordedAt: time.Now().AddDate(0, 0, -daysAgo),
	}
}

func TestComputeInsightsWeightTrend(t *testing.T) {
	cases := []struct {
		name    string
		metrics []models.HealthMetric
		want    string
	}{
		{
			name:    "increasing",
			metrics: []models.HealthMetric{weightMetric(10, 20), weightMetric(11.2, 2)},
			want:    "increasing",
		},
		{
			name:    "decreasing",
			metrics: []models.HealthMetric{weightMetric(12, 20), weightMetric(10.8, 2)},
			want:    "decreasing",
		},
		{
			name:    "stable",
			metrics: []models.HealthMetric{weightMetric(10, 20), weightMetric(10.3, 2)},
			want:    "stable",
		},
		{
			name:    "single sample is unknown",
			metrics: []models.HealthMetric{weightMetric(10, 2)},
			want:    "unknown",
		},
		{
			name: "no weight samples is unknown",
			metrics: []models.HealthMetric{
				{MetricType: models.MetricActivity, Value: 5, RecordedAt: time.Now()},
			},
			want: "unknown",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ins := computeInsights(nil, nil, tc.metrics, nil)
			assert.Equal(t, tc.want, ins.WeightTrend)
		})
	}
}

func TestComputeInsightsAverages(t *testing.T) {
	metrics := []models.HealthMetric{
		{MetricType: models.MetricActivity, Value: 4, RecordedAt: time.Now()},
		{MetricType: models.MetricActivity, Value: 6, RecordedAt: time.Now()},
		{MetricType: models.MetricEating, Value: 3, RecordedAt: time.Now()},
	}

	ins := computeInsights(nil, nil, metrics, nil)
	assert.Equal(t, 5.0, ins.ActivityLevel)
	assert.Equal(t, 3.0, ins.EatingPattern)
}

func TestComputeInsightsUpcomingVaccinations(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 10)
	far := time.Now().AddDate(0, 0, 60)
	past := time.Now().AddDate(0, 0, -5)

	vaccinations := []models.Vaccination{
		{VaccineName: "rabies", NextDueDate: &soon},
		{VaccineName: "distemper", NextDueDate: &far},
		{VaccineName: "parvo", NextDueDate: &past},
		{VaccineName: "lepto"},
	}

	ins := computeInsights(nil, vaccinations, nil, nil)
	assert.Len(t, ins.UpcomingVaccinations, 1)
	assert.Equal(t, "rabies", ins.UpcomingVaccinations[0].VaccineName)
}

func TestComputeInsightsLastCheckupAndAlerts(t *testing.T) {
	older := time.Now().AddDate(0, -2, 0)
	newer := time.Now().AddDate(0, 0, -7)
	records := []models.HealthRecord{
		{Date: older},
		{Date: newer},
	}
	alerts := []models.HealthAlert{{AlertType: "weight_loss"}, {AlertType: "lethargy"}}

	ins := computeInsights(records, nil, nil, alerts)
	assert.Equal(t, 2, ins.ActiveAlerts)
	assert.NotNil(t, ins.LastCheckup)
	assert.True(t, ins.LastCheckup.Equal(newer))
}
