package service

import (
	"context"

	"github.com/smartupsell/dashboard-service/internal/domain"
	"github.com/smartupsell/dashboard-service/internal/dto"
)

// DataSourcer defines the read surface the dashboard panels consume. Reads
// never fail: every method degrades to the demo dataset (lists) or zero
// (scalars) instead of returning an error.
type DataSourcer interface {
	// Live reports whether the session has a usable database connection
	Live() bool

	// Ping checks database liveness; demo sessions always report healthy
	Ping(ctx context.Context) error

	Activities(ctx context.Context) ([]domain.Activity, string)
	Opportunities(ctx context.Context) ([]domain.Opportunity, string)
	Campaigns(ctx context.Context) ([]domain.Campaign, string)

	ActiveUsersToday(ctx context.Context) int
	CampaignsSent(ctx context.Context) int
	Conversions(ctx context.Context) int
}

// MetricsServicer defines the interface for KPI aggregation
type MetricsServicer interface {
	Compute(ctx context.Context) *dto.MetricsResponse
}

// AnalyticsServicer defines the interface for the analytics summary
type AnalyticsServicer interface {
	Summary(ctx context.Context) *dto.AnalyticsResponse
}
