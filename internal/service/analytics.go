package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/dto"
)

// AnalyticsService builds the analytics and impact summary: opportunity
// status breakdown, the sent-vs-converted funnel, and the agent impact
// comparison against the baseline rate.
type AnalyticsService struct {
	ds      DataSourcer
	metrics MetricsServicer
	log     *zap.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(ds DataSourcer, metrics MetricsServicer, log *zap.Logger) *AnalyticsService {
	return &AnalyticsService{
		ds:      ds,
		metrics: metrics,
		log:     log,
	}
}

// Summary assembles the analytics panel from whatever the data source serves.
// The funnel's converted figure sums click counts across the campaign rows
// shown on the dashboard, not the conversions KPI.
func (a *AnalyticsService) Summary(ctx context.Context) *dto.AnalyticsResponse {
	opportunities, _ := a.ds.Opportunities(ctx)
	statusCounts := make(map[string]int, 2)
	for _, o := range opportunities {
		statusCounts[o.Status]++
	}

	campaigns, source := a.ds.Campaigns(ctx)
	converted := 0
	for _, c := range campaigns {
		converted += c.ClickCount
	}

	aggregates := a.metrics.Compute(ctx)

	return &dto.AnalyticsResponse{
		OpportunityStatusCounts: statusCounts,
		CampaignsSent:           len(campaigns),
		CampaignsConverted:      converted,
		BaselineRate:            BaselineRate,
		LiveRate:                aggregates.SuccessRate,
		Uplift:                  aggregates.Uplift,
		RelativeUplift:          aggregates.RelativeUplift,
		DataSource:              source,
	}
}
