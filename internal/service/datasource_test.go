package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/smartupsell/dashboard-service/internal/domain"
)

// MockDashboardRepository is a mock implementation of repository.DashboardRepository
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) RecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Activity), args.Error(1)
}

func (m *MockDashboardRepository) RecentOpportunities(ctx context.Context, limit int) ([]domain.Opportunity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Opportunity), args.Error(1)
}

func (m *MockDashboardRepository) RecentCampaigns(ctx context.Context, limit int) ([]domain.Campaign, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Campaign), args.Error(1)
}

func (m *MockDashboardRepository) CountActiveUsersToday(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountCampaigns(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) CountConversions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDashboardRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDashboardRepository) Close() {
	m.Called()
}

func TestDataSource_DemoMode_NeverTouchesRepository(t *testing.T) {
	ds := NewDataSource(nil, zap.NewNop())
	ctx := context.Background()

	assert.False(t, ds.Live())

	activities, source := ds.Activities(ctx)
	assert.Equal(t, SourceDemo, source)
	assert.Len(t, activities, 2)

	opportunities, source := ds.Opportunities(ctx)
	assert.Equal(t, SourceDemo, source)
	assert.Len(t, opportunities, 2)

	campaigns, source := ds.Campaigns(ctx)
	assert.Equal(t, SourceDemo, source)
	assert.Len(t, campaigns, 1)

	assert.Equal(t, 2, ds.ActiveUsersToday(ctx))
	assert.Equal(t, 1, ds.CampaignsSent(ctx))
	assert.Equal(t, 1, ds.Conversions(ctx))
}

func TestDataSource_Activities_Live(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())

	rows := []domain.Activity{
		{ID: 10, UserID: "user_a", FeatureUsed: "dashboard_view", Email: "a@example.com"},
	}
	mockRepo.On("RecentActivities", mock.Anything, activityListLimit).Return(rows, nil)

	activities, source := ds.Activities(context.Background())

	assert.True(t, ds.Live())
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, rows, activities)
	mockRepo.AssertExpectations(t)
}

func TestDataSource_Activities_QueryErrorFallsBackToDemo(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())

	mockRepo.On("RecentActivities", mock.Anything, activityListLimit).
		Return(nil, errors.New("connection reset"))

	activities, source := ds.Activities(context.Background())

	assert.Equal(t, SourceDemo, source)
	assert.Len(t, activities, 2)
	assert.Equal(t, "sarah_designer", activities[0].UserID)
}

func TestDataSource_Opportunities_EmptyLiveResultFallsBackToDemo(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())

	mockRepo.On("RecentOpportunities", mock.Anything, opportunityListLimit).
		Return([]domain.Opportunity{}, nil)

	opportunities, source := ds.Opportunities(context.Background())

	assert.Equal(t, SourceDemo, source)
	assert.Len(t, opportunities, 2)
}

func TestDataSource_Campaigns_Live(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())

	rows := []domain.Campaign{
		{ID: 7, OpportunityID: 3, UserID: "user_b", ClickCount: 2},
	}
	mockRepo.On("RecentCampaigns", mock.Anything, campaignListLimit).Return(rows, nil)

	campaigns, source := ds.Campaigns(context.Background())

	assert.Equal(t, SourceLive, source)
	assert.Equal(t, rows, campaigns)
}

func TestDataSource_Scalars_Live(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("CountActiveUsersToday", mock.Anything).Return(int64(17), nil)
	mockRepo.On("CountCampaigns", mock.Anything).Return(int64(40), nil)
	mockRepo.On("CountConversions", mock.Anything).Return(int64(9), nil)

	assert.Equal(t, 17, ds.ActiveUsersToday(ctx))
	assert.Equal(t, 40, ds.CampaignsSent(ctx))
	assert.Equal(t, 9, ds.Conversions(ctx))
	mockRepo.AssertExpectations(t)
}

func TestDataSource_Ping_DemoModeAlwaysHealthy(t *testing.T) {
	ds := NewDataSource(nil, zap.NewNop())

	assert.NoError(t, ds.Ping(context.Background()))
}

func TestDataSource_Ping_LiveDelegatesToRepository(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())

	pingErr := errors.New("connection refused")
	mockRepo.On("Ping", mock.Anything).Return(pingErr)

	assert.ErrorIs(t, ds.Ping(context.Background()), pingErr)
	mockRepo.AssertExpectations(t)
}

func TestDataSource_Scalars_LiveErrorDegradesToZero(t *testing.T) {
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())
	ctx := context.Background()

	queryErr := errors.New("relation does not exist")
	mockRepo.On("CountActiveUsersToday", mock.Anything).Return(int64(0), queryErr)
	mockRepo.On("CountCampaigns", mock.Anything).Return(int64(0), queryErr)
	mockRepo.On("CountConversions", mock.Anything).Return(int64(0), queryErr)

	// Live scalar failures degrade to zero, not to the demo counts
	assert.Equal(t, 0, ds.ActiveUsersToday(ctx))
	assert.Equal(t, 0, ds.CampaignsSent(ctx))
	assert.Equal(t, 0, ds.Conversions(ctx))
}
