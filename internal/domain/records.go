package domain

import "time"

// Activity represents one user interaction event, inserted by the external
// webhook receiver and read-only here.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	FeatureUsed string    `json:"feature_used" db:"feature_used"`
	Email       string    `json:"email" db:"email"`
	Timestamp   time.Time `json:"timestamp" db:"timestamp"`
}

// Opportunity represents an AI-generated upsell recommendation produced by the
// external scoring process.
type Opportunity struct {
	ID                 int64     `json:"id" db:"id"`
	UserID             string    `json:"user_id" db:"user_id"`
	Email              string    `json:"email" db:"email"`
	RecommendedFeature string    `json:"recommended_feature" db:"recommended_feature"`
	AIScore            int       `json:"ai_score" db:"ai_score"`
	Reasoning          string    `json:"reasoning" db:"reasoning"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	Status             string    `json:"status" db:"status"`
}

// Campaign represents one outbound send from campaign history. OpportunityID
// is a soft reference; nothing enforces it against the opportunities table.
type Campaign struct {
	ID                 int64     `json:"id" db:"id"`
	OpportunityID      int64     `json:"opportunity_id" db:"opportunity_id"`
	UserID             string    `json:"user_id" db:"user_id"`
	RecommendedFeature string    `json:"recommended_feature" db:"recommended_feature"`
	SubjectLine        string    `json:"subject_line" db:"subject_line"`
	EmailMessage       string    `json:"email_message" db:"email_message"`
	EmailTo            string    `json:"email_to" db:"email_to"`
	CampaignType       string    `json:"campaign_type" db:"campaign_type"`
	AIScore            int       `json:"ai_score" db:"ai_score"`
	SentAt             time.Time `json:"sent_at" db:"sent_at"`
	DeliveryStatus     string    `json:"delivery_status" db:"delivery_status"`
	OpenCount          int       `json:"open_count" db:"open_count"`
	ClickCount         int       `json:"click_count" db:"click_count"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

// Aggregates holds the headline KPIs. Derived on every read, never persisted.
type Aggregates struct {
	UsersToday  int     `json:"active_users_today"`
	EmailsSent  int     `json:"emails_sent"`
	Conversions int     `json:"conversions"`
	SuccessRate float64 `json:"success_rate"`
}
