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

// MockDataSource is a mock implementation of DataSourcer
type MockDataSource struct {
	mock.Mock
}

func (m *MockDataSource) Live() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockDataSource) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDataSource) Activities(ctx context.Context) ([]domain.Activity, string) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Activity), args.String(1)
}

func (m *MockDataSource) Opportunities(ctx context.Context) ([]domain.Opportunity, string) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Opportunity), args.String(1)
}

func (m *MockDataSource) Campaigns(ctx context.Context) ([]domain.Campaign, string) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Campaign), args.String(1)
}

func (m *MockDataSource) ActiveUsersToday(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockDataSource) CampaignsSent(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockDataSource) Conversions(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func TestMetricsService_Compute_DemoScenario(t *testing.T) {
	// Demo dataset: two activities with distinct users, one campaign with a click
	ds := NewDataSource(nil, zap.NewNop())
	metrics := NewMetricsService(ds, zap.NewNop())

	result := metrics.Compute(context.Background())

	assert.Equal(t, 2, result.UsersToday)
	assert.Equal(t, 1, result.EmailsSent)
	assert.Equal(t, 1, result.Conversions)
	assert.Equal(t, 100.0, result.SuccessRate)
	assert.Equal(t, 2.0, result.BaselineRate)
	assert.Equal(t, 98.0, result.Uplift)
	assert.Equal(t, 4900.0, result.RelativeUplift)
	assert.Equal(t, SourceDemo, result.DataSource)
}

func TestMetricsService_Compute_ZeroSentMeansZeroRate(t *testing.T) {
	mockDS := new(MockDataSource)
	metrics := NewMetricsService(mockDS, zap.NewNop())

	mockDS.On("ActiveUsersToday", mock.Anything).Return(5)
	mockDS.On("CampaignsSent", mock.Anything).Return(0)
	mockDS.On("Conversions", mock.Anything).Return(3)
	mockDS.On("Live").Return(true)

	result := metrics.Compute(context.Background())

	assert.Equal(t, 0, result.EmailsSent)
	assert.Equal(t, 0.0, result.SuccessRate)
	assert.Equal(t, -2.0, result.Uplift)
	assert.Equal(t, SourceLive, result.DataSource)
}

func TestMetricsService_Compute_RoundsToTwoDecimals(t *testing.T) {
	mockDS := new(MockDataSource)
	metrics := NewMetricsService(mockDS, zap.NewNop())

	mockDS.On("ActiveUsersToday", mock.Anything).Return(10)
	mockDS.On("CampaignsSent", mock.Anything).Return(3)
	mockDS.On("Conversions", mock.Anything).Return(1)
	mockDS.On("Live").Return(true)

	result := metrics.Compute(context.Background())

	assert.Equal(t, 33.33, result.SuccessRate)
	assert.Equal(t, 31.33, result.Uplift)
	assert.Equal(t, 1566.5, result.RelativeUplift)
}

func TestMetricsService_Compute_LiveCampaignCountFailure(t *testing.T) {
	// A failing campaign count query yields zero sent and zero rate no
	// matter what the conversions count says
	mockRepo := new(MockDashboardRepository)
	ds := NewDataSource(mockRepo, zap.NewNop())
	metrics := NewMetricsService(ds, zap.NewNop())

	mockRepo.On("CountActiveUsersToday", mock.Anything).Return(int64(12), nil)
	mockRepo.On("CountCampaigns", mock.Anything).Return(int64(0), errors.New("query timeout"))
	mockRepo.On("CountConversions", mock.Anything).Return(int64(5), nil)

	result := metrics.Compute(context.Background())

	assert.Equal(t, 12, result.UsersToday)
	assert.Equal(t, 0, result.EmailsSent)
	assert.Equal(t, 5, result.Conversions)
	assert.Equal(t, 0.0, result.SuccessRate)
	assert.Equal(t, SourceLive, result.DataSource)
}

func TestMetricsService_ComputeAggregates(t *testing.T) {
	mockDS := new(MockDataSource)
	metrics := NewMetricsService(mockDS, zap.NewNop())

	mockDS.On("ActiveUsersToday", mock.Anything).Return(8)
	mockDS.On("CampaignsSent", mock.Anything).Return(4)
	mockDS.On("Conversions", mock.Anything).Return(3)

	aggregates := metrics.computeAggregates(context.Background())

	assert.Equal(t, domain.Aggregates{
		UsersToday:  8,
		EmailsSent:  4,
		Conversions: 3,
		SuccessRate: 75.0,
	}, aggregates)
}

func TestMetricsService_Compute_NoCachingBetweenCalls(t *testing.T) {
	mockDS := new(MockDataSource)
	metrics := NewMetricsService(mockDS, zap.NewNop())

	mockDS.On("ActiveUsersToday", mock.Anything).Return(1).Once()
	mockDS.On("CampaignsSent", mock.Anything).Return(10).Once()
	mockDS.On("Conversions", mock.Anything).Return(1).Once()
	mockDS.On("ActiveUsersToday", mock.Anything).Return(2).Once()
	mockDS.On("CampaignsSent", mock.Anything).Return(20).Once()
	mockDS.On("Conversions", mock.Anything).Return(2).Once()
	mockDS.On("Live").Return(true)

	first := metrics.Compute(context.Background())
	second := metrics.Compute(context.Background())

	assert.Equal(t, 10, first.EmailsSent)
	assert.Equal(t, 20, second.EmailsSent)
	mockDS.AssertExpectations(t)
}
