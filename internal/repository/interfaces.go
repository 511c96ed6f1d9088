package repository

import (
	"context"

	"github.com/smartupsell/dashboard-service/internal/domain"
)

// DashboardRepository defines the read contract over the upsell store. All
// reads are strictly sequential and side-effect free; callers decide how to
// degrade when a read fails.
type DashboardRepository interface {
	// RecentActivities returns activities newest first, at most limit rows
	RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error)

	// RecentOpportunities returns opportunities newest first, at most limit rows
	RecentOpportunities(ctx context.Context, limit int) ([]domain.Opportunity, error)

	// RecentCampaigns returns campaigns newest first by sent_at, at most limit rows
	RecentCampaigns(ctx context.Context, limit int) ([]domain.Campaign, error)

	// CountActiveUsersToday counts distinct users with activity since the
	// start of the current calendar day
	CountActiveUsersToday(ctx context.Context) (int64, error)

	// CountCampaigns counts all campaign history rows
	CountCampaigns(ctx context.Context) (int64, error)

	// CountConversions counts campaigns with any open or click
	CountConversions(ctx context.Context) (int64, error)

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close()
}
