package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/domain"
	"github.com/smartupsell/dashboard-service/internal/repository"
)

// Data source labels reported alongside every panel response
const (
	SourceLive = "live"
	SourceDemo = "demo"
)

const (
	activityListLimit    = 20
	opportunityListLimit = 50
	campaignListLimit    = 50
)

// DataSource gates every read between the live repository and the compiled-in
// demo dataset. The mode is decided once at construction and is sticky for
// the session: a nil repository means demo-only, and no later read attempts a
// live connection.
type DataSource struct {
	repo repository.DashboardRepository
	live bool
	log  *zap.Logger
}

// NewDataSource creates a data source over the given repository. Pass a nil
// repository to run the session on demo data.
func NewDataSource(repo repository.DashboardRepository, log *zap.Logger) *DataSource {
	return &DataSource{
		repo: repo,
		live: repo != nil,
		log:  log,
	}
}

// Live reports whether the session has a usable database connection
func (s *DataSource) Live() bool {
	return s.live
}

// Ping checks whether the live connection is still answering. Demo sessions
// have nothing to check and always report healthy.
func (s *DataSource) Ping(ctx context.Context) error {
	if !s.live {
		return nil
	}
	return s.repo.Ping(ctx)
}

// Activities returns the recent-activities panel rows and their source.
// A failed or empty live read degrades to the demo rows.
func (s *DataSource) Activities(ctx context.Context) ([]domain.Activity, string) {
	if !s.live {
		return domain.DemoActivities(), SourceDemo
	}

	activities, err := s.repo.RecentActivities(ctx, activityListLimit)
	if err != nil {
		s.log.Warn("Failed to read activities, serving demo data", zap.Error(err))
		return domain.DemoActivities(), SourceDemo
	}
	if len(activities) == 0 {
		return domain.DemoActivities(), SourceDemo
	}

	return activities, SourceLive
}

// Opportunities returns the upsell-opportunities panel rows and their source
func (s *DataSource) Opportunities(ctx context.Context) ([]domain.Opportunity, string) {
	if !s.live {
		return domain.DemoOpportunities(), SourceDemo
	}

	opportunities, err := s.repo.RecentOpportunities(ctx, opportunityListLimit)
	if err != nil {
		s.log.Warn("Failed to read opportunities, serving demo data", zap.Error(err))
		return domain.DemoOpportunities(), SourceDemo
	}
	if len(opportunities) == 0 {
		return domain.DemoOpportunities(), SourceDemo
	}

	return opportunities, SourceLive
}

// Campaigns returns the campaign-history panel rows and their source
func (s *DataSource) Campaigns(ctx context.Context) ([]domain.Campaign, string) {
	if !s.live {
		return domain.DemoCampaigns(), SourceDemo
	}

	campaigns, err := s.repo.RecentCampaigns(ctx, campaignListLimit)
	if err != nil {
		s.log.Warn("Failed to read campaigns, serving demo data", zap.Error(err))
		return domain.DemoCampaigns(), SourceDemo
	}
	if len(campaigns) == 0 {
		return domain.DemoCampaigns(), SourceDemo
	}

	return campaigns, SourceLive
}

// ActiveUsersToday counts distinct users active since the start of the
// current day. Live scalar failures degrade to zero, not to the demo count.
func (s *DataSource) ActiveUsersToday(ctx context.Context) int {
	if !s.live {
		return distinctUsers(domain.DemoActivities())
	}

	count, err := s.repo.CountActiveUsersToday(ctx)
	if err != nil {
		s.log.Warn("Failed to count active users", zap.Error(err))
		return 0
	}

	return int(count)
}

// CampaignsSent counts all sent campaigns
func (s *DataSource) CampaignsSent(ctx context.Context) int {
	if !s.live {
		return len(domain.DemoCampaigns())
	}

	count, err := s.repo.CountCampaigns(ctx)
	if err != nil {
		s.log.Warn("Failed to count campaigns", zap.Error(err))
		return 0
	}

	return int(count)
}

// Conversions counts converted campaigns. Live mode counts any open or click;
// demo mode counts clicks only, matching the dashboard's historical behavior.
func (s *DataSource) Conversions(ctx context.Context) int {
	if !s.live {
		converted := 0
		for _, c := range domain.DemoCampaigns() {
			if c.ClickCount > 0 {
				converted++
			}
		}
		return converted
	}

	count, err := s.repo.CountConversions(ctx)
	if err != nil {
		s.log.Warn("Failed to count conversions", zap.Error(err))
		return 0
	}

	return int(count)
}

func distinctUsers(activities []domain.Activity) int {
	seen := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		seen[a.UserID] = struct{}{}
	}
	return len(seen)
}
