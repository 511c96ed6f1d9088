package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/domain"
	"github.com/smartupsell/dashboard-service/internal/dto"
)

// BaselineRate is the fixed conversion rate (percent) the agent is measured
// against when computing uplift.
const BaselineRate = 2.0

// MetricsService computes the headline KPIs
type MetricsService struct {
	ds  DataSourcer
	log *zap.Logger
}

// NewMetricsService creates a new metrics service
func NewMetricsService(ds DataSourcer, log *zap.Logger) *MetricsService {
	return &MetricsService{
		ds:  ds,
		log: log,
	}
}

// Compute derives the headline KPIs and wraps them with the uplift
// comparison for the dashboard. Every call recomputes from the data source
// so the dashboard reflects live state on each refresh; nothing is cached.
func (m *MetricsService) Compute(ctx context.Context) *dto.MetricsResponse {
	aggregates := m.computeAggregates(ctx)

	source := SourceDemo
	if m.ds.Live() {
		source = SourceLive
	}

	m.log.Debug("Computed aggregates",
		zap.Int("users_today", aggregates.UsersToday),
		zap.Int("emails_sent", aggregates.EmailsSent),
		zap.Int("conversions", aggregates.Conversions),
		zap.Float64("success_rate", aggregates.SuccessRate),
		zap.String("data_source", source))

	return &dto.MetricsResponse{
		UsersToday:     aggregates.UsersToday,
		EmailsSent:     aggregates.EmailsSent,
		Conversions:    aggregates.Conversions,
		SuccessRate:    aggregates.SuccessRate,
		BaselineRate:   BaselineRate,
		Uplift:         round2(aggregates.SuccessRate - BaselineRate),
		RelativeUplift: round2((aggregates.SuccessRate/BaselineRate - 1) * 100),
		DataSource:     source,
	}
}

// computeAggregates derives the KPI set fresh from the data source
func (m *MetricsService) computeAggregates(ctx context.Context) domain.Aggregates {
	emailsSent := m.ds.CampaignsSent(ctx)
	conversions := m.ds.Conversions(ctx)

	return domain.Aggregates{
		UsersToday:  m.ds.ActiveUsersToday(ctx),
		EmailsSent:  emailsSent,
		Conversions: conversions,
		SuccessRate: conversionRate(conversions, emailsSent),
	}
}

// conversionRate returns conversions/sent as a percentage rounded to two
// decimals, and 0 when nothing was sent.
func conversionRate(conversions, sent int) float64 {
	if sent == 0 {
		return 0
	}
	return round2(float64(conversions) / float64(sent) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
