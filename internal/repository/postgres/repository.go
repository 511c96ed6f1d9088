package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/domain"
)

// Repository implements DashboardRepository for Postgres
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new Postgres repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// RecentActivities retrieves the newest user activities
func (r *Repository) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `
		SELECT id, user_id, feature_used, email, timestamp
		FROM user_activities
		ORDER BY timestamp DESC
		LIMIT $1`

	rows, err := r.client.Pool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.UserID, &a.FeatureUsed, &a.Email, &a.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activities, nil
}

// RecentOpportunities retrieves the newest upsell opportunities
func (r *Repository) RecentOpportunities(ctx context.Context, limit int) ([]domain.Opportunity, error) {
	query := `
		SELECT id, user_id, email, recommended_feature, ai_score, reasoning, created_at, status
		FROM upsell_opportunities
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.client.Pool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query opportunities: %w", err)
	}
	defer rows.Close()

	var opportunities []domain.Opportunity
	for rows.Next() {
		var o domain.Opportunity
		if err := rows.Scan(&o.ID, &o.UserID, &o.Email, &o.RecommendedFeature,
			&o.AIScore, &o.Reasoning, &o.CreatedAt, &o.Status); err != nil {
			return nil, fmt.Errorf("failed to scan opportunity row: %w", err)
		}
		opportunities = append(opportunities, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opportunity rows: %w", err)
	}

	return opportunities, nil
}

// RecentCampaigns retrieves the newest campaign history rows by send time
func (r *Repository) RecentCampaigns(ctx context.Context, limit int) ([]domain.Campaign, error) {
	query := `
		SELECT id, opportunity_id, user_id, recommended_feature, subject_line,
			email_message, email_to, campaign_type, ai_score, sent_at,
			delivery_status, open_count, click_count, created_at
		FROM campaign_history
		ORDER BY sent_at DESC
		LIMIT $1`

	rows, err := r.client.Pool().Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		var c domain.Campaign
		if err := rows.Scan(&c.ID, &c.OpportunityID, &c.UserID, &c.RecommendedFeature,
			&c.SubjectLine, &c.EmailMessage, &c.EmailTo, &c.CampaignType, &c.AIScore,
			&c.SentAt, &c.DeliveryStatus, &c.OpenCount, &c.ClickCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaign rows: %w", err)
	}

	return campaigns, nil
}

// CountActiveUsersToday counts distinct users active since the start of the
// current calendar day
func (r *Repository) CountActiveUsersToday(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(DISTINCT user_id) FROM user_activities WHERE timestamp >= CURRENT_DATE`

	var count int64
	if err := r.client.Pool().QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}

	return count, nil
}

// CountCampaigns counts all campaign history rows
func (r *Repository) CountCampaigns(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM campaign_history`

	var count int64
	if err := r.client.Pool().QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	return count, nil
}

// CountConversions counts campaigns with any open or click
func (r *Repository) CountConversions(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM campaign_history
		WHERE COALESCE(open_count, 0) > 0 OR COALESCE(click_count, 0) > 0`

	var count int64
	if err := r.client.Pool().QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count conversions: %w", err)
	}

	return count, nil
}

// Ping checks if the Postgres connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Pool().Ping(ctx)
}

// Close closes the Postgres connection pool
func (r *Repository) Close() {
	r.client.Close()
}
