package dto

import (
	"encoding/json"

	"github.com/smartupsell/dashboard-service/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"user_id is required"`
}

// MetricsResponse represents the headline KPIs plus the uplift comparison
// against the fixed baseline conversion rate
type MetricsResponse struct {
	UsersToday     int     `json:"active_users_today" example:"2"`
	EmailsSent     int     `json:"emails_sent" example:"1"`
	Conversions    int     `json:"conversions" example:"1"`
	SuccessRate    float64 `json:"success_rate" example:"100"`
	BaselineRate   float64 `json:"baseline_rate" example:"2"`
	Uplift         float64 `json:"uplift" example:"98"`
	RelativeUplift float64 `json:"relative_uplift" example:"4900"`
	DataSource     string  `json:"data_source" example:"demo"`
}

// ActivityListResponse represents the recent-activities panel
type ActivityListResponse struct {
	DataSource string            `json:"data_source" example:"live"`
	Activities []domain.Activity `json:"activities"`
}

// OpportunityListResponse represents the upsell-opportunities panel
type OpportunityListResponse struct {
	DataSource    string               `json:"data_source" example:"live"`
	Opportunities []domain.Opportunity `json:"opportunities"`
}

// CampaignListResponse represents the campaign-history panel
type CampaignListResponse struct {
	DataSource string            `json:"data_source" example:"live"`
	Campaigns  []domain.Campaign `json:"campaigns"`
}

// AnalyticsResponse represents the analytics and impact summary
type AnalyticsResponse struct {
	OpportunityStatusCounts map[string]int `json:"opportunity_status_counts"`
	CampaignsSent           int            `json:"campaigns_sent" example:"1"`
	CampaignsConverted      int            `json:"campaigns_converted" example:"1"`
	BaselineRate            float64        `json:"baseline_rate" example:"2"`
	LiveRate                float64        `json:"live_rate" example:"100"`
	Uplift                  float64        `json:"uplift" example:"98"`
	RelativeUplift          float64        `json:"relative_uplift" example:"4900"`
	DataSource              string         `json:"data_source" example:"demo"`
}

// WebhookResultResponse reports a webhook dispatch outcome. The attempted
// payload is always included so nothing the user entered is silently lost.
type WebhookResultResponse struct {
	Status       string          `json:"status" example:"sent"`
	HTTPStatus   int             `json:"http_status,omitempty" example:"201"`
	Response     json.RawMessage `json:"response,omitempty"`
	ResponseText string          `json:"response_text,omitempty"`
	Message      string          `json:"message,omitempty"`
	Payload      interface{}     `json:"payload"`
}
