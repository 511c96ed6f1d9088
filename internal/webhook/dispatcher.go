package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/config"
)

// Status classifies the outcome of a dispatch attempt
type Status string

const (
	// StatusSent means the endpoint answered with a 2xx status
	StatusSent Status = "sent"
	// StatusRejected means the payload or configuration failed local
	// validation; no network call was made
	StatusRejected Status = "rejected"
	// StatusHTTPError means the endpoint answered with a non-2xx status
	StatusHTTPError Status = "webhook_error"
	// StatusTransportError means the call itself failed (timeout, refused
	// connection, DNS)
	StatusTransportError Status = "transport_error"
)

// ActivityPayload is the activity-tracked event sent to the automation
// webhook. Timestamp is ISO-8601 UTC.
type ActivityPayload struct {
	UserID    string `json:"user_id"`
	Feature   string `json:"feature"`
	Email     string `json:"email"`
	PlanType  string `json:"plan_type"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// CampaignTriggerPayload requests an outbound campaign for one opportunity
type CampaignTriggerPayload struct {
	OpportunityID int64 `json:"opportunity_id"`
}

// Outcome reports a single dispatch attempt. Payload is always populated so
// callers can show the user exactly what was (or would have been) sent.
type Outcome struct {
	Status     Status
	HTTPStatus int
	Body       json.RawMessage // parsed JSON response on success
	RawBody    string          // verbatim body for non-JSON success and HTTP errors
	Message    string          // validation or transport detail
	Payload    interface{}
}

// Sender defines the interface for dispatching outbound webhook events
type Sender interface {
	TrackActivity(ctx context.Context, payload ActivityPayload) *Outcome
	TriggerCampaign(ctx context.Context, payload CampaignTriggerPayload) *Outcome
}

// Dispatcher sends webhook events over HTTP. Each dispatch is a single
// best-effort synchronous attempt; there is no retry.
type Dispatcher struct {
	client *http.Client
	config config.Webhooks
	log    *zap.Logger
}

// NewDispatcher creates a new webhook dispatcher
func NewDispatcher(webhookConfig config.Webhooks, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		client: &http.Client{},
		config: webhookConfig,
		log:    log,
	}
}

// TrackActivity sends an activity-tracked event to the user-activity webhook
func (d *Dispatcher) TrackActivity(ctx context.Context, payload ActivityPayload) *Outcome {
	if d.config.UserActivityURL == "" {
		return &Outcome{
			Status:  StatusRejected,
			Message: "USER_ACTIVITY_WEBHOOK is not configured",
			Payload: payload,
		}
	}

	return d.post(ctx, d.config.UserActivityURL, payload,
		time.Duration(d.config.ActivityTimeoutSec)*time.Second)
}

// TriggerCampaign sends a campaign-trigger request to the campaign webhook.
// Non-positive opportunity ids are rejected before any network call.
func (d *Dispatcher) TriggerCampaign(ctx context.Context, payload CampaignTriggerPayload) *Outcome {
	if payload.OpportunityID <= 0 {
		return &Outcome{
			Status:  StatusRejected,
			Message: "opportunity_id must be greater than zero",
			Payload: payload,
		}
	}

	if d.config.CampaignTriggerURL == "" {
		return &Outcome{
			Status:  StatusRejected,
			Message: "CAMPAIGN_TRIGGER_WEBHOOK is not configured",
			Payload: payload,
		}
	}

	return d.post(ctx, d.config.CampaignTriggerURL, payload,
		time.Duration(d.config.CampaignTimeoutSec)*time.Second)
}

func (d *Dispatcher) post(ctx context.Context, url string, payload interface{}, timeout time.Duration) *Outcome {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Outcome{
			Status:  StatusRejected,
			Message: "failed to marshal payload: " + err.Error(),
			Payload: payload,
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &Outcome{
			Status:  StatusRejected,
			Message: "failed to build request: " + err.Error(),
			Payload: payload,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.log.Warn("Webhook call failed",
			zap.String("url", url),
			zap.Error(err))
		return &Outcome{
			Status:  StatusTransportError,
			Message: err.Error(),
			Payload: payload,
		}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			d.log.Warn("Failed to close webhook response body", zap.Error(err))
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		d.log.Warn("Failed to read webhook response body",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		raw = nil
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		outcome := &Outcome{
			Status:     StatusSent,
			HTTPStatus: resp.StatusCode,
			Payload:    payload,
		}
		// A non-JSON body is still a success, just not displayable as JSON
		if len(raw) > 0 && json.Valid(raw) {
			outcome.Body = raw
		} else {
			outcome.RawBody = string(raw)
		}
		return outcome
	}

	d.log.Warn("Webhook returned error status",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode))

	return &Outcome{
		Status:     StatusHTTPError,
		HTTPStatus: resp.StatusCode,
		RawBody:    string(raw),
		Payload:    payload,
	}
}
