package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/dto"
	"github.com/smartupsell/dashboard-service/internal/service"
	"github.com/smartupsell/dashboard-service/internal/webhook"
)

type Handler struct {
	dataSource service.DataSourcer
	metrics    service.MetricsServicer
	analytics  service.AnalyticsServicer
	sender     webhook.Sender
	router     *gin.Engine
	log        *zap.Logger
}

func NewHandler(
	dataSource service.DataSourcer,
	metrics service.MetricsServicer,
	analytics service.AnalyticsServicer,
	sender webhook.Sender,
	log *zap.Logger,
) *Handler {
	h := &Handler{
		dataSource: dataSource,
		metrics:    metrics,
		analytics:  analytics,
		sender:     sender,
		router:     gin.Default(),
		log:        log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.GET("/metrics", h.getMetrics)
	h.router.GET("/analytics", h.getAnalytics)
	h.router.GET("/activities", h.listActivities)
	h.router.GET("/opportunities", h.listOpportunities)
	h.router.GET("/campaigns", h.listCampaigns)
	h.router.POST("/activities/track", h.trackActivity)
	h.router.POST("/campaigns/trigger", h.triggerCampaign)
}

// healthCheck handles health check requests. Live sessions ping the database
// so a dead connection shows up here instead of as silently demo-looking
// panels.
func (h *Handler) healthCheck(c *gin.Context) {
	source := service.SourceDemo
	if h.dataSource.Live() {
		source = service.SourceLive
	}

	if err := h.dataSource.Ping(c.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":      "degraded",
			"data_source": source,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"data_source": source,
	})
}

// getMetrics handles GET /metrics
func (h *Handler) getMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.metrics.Compute(c.Request.Context()))
}

// getAnalytics handles GET /analytics
func (h *Handler) getAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.Summary(c.Request.Context()))
}

// listActivities handles GET /activities
func (h *Handler) listActivities(c *gin.Context) {
	activities, source := h.dataSource.Activities(c.Request.Context())
	c.JSON(http.StatusOK, dto.ActivityListResponse{
		DataSource: source,
		Activities: activities,
	})
}

// listOpportunities handles GET /opportunities
func (h *Handler) listOpportunities(c *gin.Context) {
	opportunities, source := h.dataSource.Opportunities(c.Request.Context())
	c.JSON(http.StatusOK, dto.OpportunityListResponse{
		DataSource:    source,
		Opportunities: opportunities,
	})
}

// listCampaigns handles GET /campaigns
func (h *Handler) listCampaigns(c *gin.Context) {
	campaigns, source := h.dataSource.Campaigns(c.Request.Context())
	c.JSON(http.StatusOK, dto.CampaignListResponse{
		DataSource: source,
		Campaigns:  campaigns,
	})
}

// trackActivity handles POST /activities/track
func (h *Handler) trackActivity(c *gin.Context) {
	var req dto.TrackActivityRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = "session_" + uuid.NewString()[:8]
	}

	payload := webhook.ActivityPayload{
		UserID:    req.UserID,
		Feature:   req.FeatureUsed,
		Email:     req.Email,
		PlanType:  req.PlanType,
		SessionID: sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	h.respondOutcome(c, h.sender.TrackActivity(c.Request.Context(), payload))
}

// triggerCampaign handles POST /campaigns/trigger
func (h *Handler) triggerCampaign(c *gin.Context) {
	var req dto.TriggerCampaignRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	payload := webhook.CampaignTriggerPayload{OpportunityID: req.OpportunityID}

	h.respondOutcome(c, h.sender.TriggerCampaign(c.Request.Context(), payload))
}

// respondOutcome maps a dispatch outcome onto an HTTP response. Failed
// dispatches still carry the attempted payload so the caller can retry or
// copy it elsewhere.
func (h *Handler) respondOutcome(c *gin.Context, outcome *webhook.Outcome) {
	body := dto.WebhookResultResponse{
		Status:       string(outcome.Status),
		HTTPStatus:   outcome.HTTPStatus,
		Response:     outcome.Body,
		ResponseText: outcome.RawBody,
		Message:      outcome.Message,
		Payload:      outcome.Payload,
	}

	switch outcome.Status {
	case webhook.StatusSent:
		c.JSON(http.StatusOK, body)
	case webhook.StatusRejected:
		c.JSON(http.StatusBadRequest, body)
	default:
		c.JSON(http.StatusBadGateway, body)
	}
}
