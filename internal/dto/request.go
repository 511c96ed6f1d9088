package dto

// TrackActivityRequest represents a track-activity form submission
type TrackActivityRequest struct {
	UserID      string `json:"user_id" binding:"required" example:"sarah_designer"`
	FeatureUsed string `json:"feature_used" binding:"required,oneof=export_report file_share integration_setup dashboard_view" example:"export_report"`
	Email       string `json:"email" binding:"required,email" example:"sarah@example.com"`
	PlanType    string `json:"plan_type" binding:"required,oneof=free pro enterprise" example:"free"`
	SessionID   string `json:"session_id" example:"session_8f14e45f"`
}

// TriggerCampaignRequest represents a campaign-trigger request. OpportunityID
// is validated by the dispatcher so that non-positive ids are rejected before
// any network call rather than by binding.
type TriggerCampaignRequest struct {
	OpportunityID int64 `json:"opportunity_id" example:"1"`
}
