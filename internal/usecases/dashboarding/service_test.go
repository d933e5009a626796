package dashboarding

import (
	"testing"
	"time"

	"github.com/shreyanithin/marketing-intelligence-api/infrastructure/datasource/mocks"
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ptrDate(d time.Time) *time.Time {
	return &d
}

func fixtureMarketing() []*domain.MarketingRecord {
	return []*domain.MarketingRecord{
		{Date: date(2024, 1, 1), Platform: domain.PlatformFacebook, State: "CA", Tactic: "Retargeting", Campaign: "FB-1", Spend: 50, Impressions: 1000, Clicks: 40, AttributedRevenue: 100},
		{Date: date(2024, 1, 2), Platform: domain.PlatformFacebook, State: "NY", Tactic: "Prospecting", Campaign: "FB-2", Spend: 30, Impressions: 600, Clicks: 20, AttributedRevenue: 45},
		{Date: date(2024, 1, 2), Platform: domain.PlatformGoogle, State: "CA", Tactic: "Search", Campaign: "GG-1", Spend: 20, Impressions: 400, Clicks: 25, AttributedRevenue: 80},
		{Date: date(2024, 1, 3), Platform: domain.PlatformTikTok, State: "TX", Tactic: "Spark Ads", Campaign: "TT-1", Spend: 10, Impressions: 900, Clicks: 12, AttributedRevenue: 15},
	}
}

func fixtureBusiness() []*domain.BusinessDay {
	return []*domain.BusinessDay{
		{Date: date(2024, 1, 1), TotalRevenue: 1000, GrossProfit: 400, NewCustomers: 10},
		{Date: date(2024, 1, 2), TotalRevenue: 1500, GrossProfit: 600, NewCustomers: 15},
		{Date: date(2024, 1, 3), TotalRevenue: 700, GrossProfit: 250, NewCustomers: 4},
		{Date: date(2024, 1, 4), TotalRevenue: 300, GrossProfit: 100, NewCustomers: 2},
	}
}

func newLoadedService(t *testing.T) *Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().LoadMarketing().Return(fixtureMarketing(), nil)
	mockSource.EXPECT().LoadBusiness().Return(fixtureBusiness(), nil)

	service := NewService(mockSource)

	_, err := service.Reload()
	require.NoError(t, err)

	return service
}

func TestService_Reload(t *testing.T) {
	service := newLoadedService(t)

	snapshot := service.Snapshot()
	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.ID)

	// A junção preserva exatamente as linhas do negócio
	assert.Len(t, snapshot.Daily, len(fixtureBusiness()))
	assert.Len(t, snapshot.Marketing, len(fixtureMarketing()))

	// 2024-01-04 não tem marketing: medidas e razões zeradas
	lastDay := snapshot.Daily[3]
	assert.Equal(t, 0.0, lastDay.Spend)
	assert.Equal(t, 0.0, lastDay.ROAS)
	assert.Equal(t, 0.0, lastDay.MER)
	assert.Equal(t, 0.0, lastDay.CAC)

	// 2024-01-02 soma os dois canais do dia
	secondDay := snapshot.Daily[1]
	assert.Equal(t, 50.0, secondDay.Spend)
	assert.Equal(t, int64(45), secondDay.Clicks)
	assert.InDelta(t, 2.5, secondDay.ROAS, 1e-6)

	assert.Equal(t, []string{domain.PlatformFacebook, domain.PlatformGoogle, domain.PlatformTikTok}, snapshot.Domains.Platforms)
	assert.Equal(t, date(2024, 1, 1), *snapshot.Domains.MinDate)
	assert.Equal(t, date(2024, 1, 4), *snapshot.Domains.MaxDate)
}

func TestService_Reload_SourceFailureAbortsLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := mocks.NewMockSource(ctrl)
	mockSource.EXPECT().LoadMarketing().Return(nil, assert.AnError)

	service := NewService(mockSource)

	_, err := service.Reload()
	assert.Error(t, err)
	assert.Nil(t, service.Snapshot())
}

func TestService_GetDashboard(t *testing.T) {
	service := newLoadedService(t)

	tests := []struct {
		name     string
		filters  *domain.DashboardFilters
		validate func(t *testing.T, dashboard *DashboardResponse)
	}{
		{
			name:    "sem filtros aplica o intervalo completo do negócio",
			filters: nil,
			validate: func(t *testing.T, dashboard *DashboardResponse) {
				assert.Len(t, dashboard.Marketing, 4)
				assert.Len(t, dashboard.Daily, 4)
				assert.Equal(t, date(2024, 1, 1), *dashboard.Filters.StartDate)
				assert.Equal(t, date(2024, 1, 4), *dashboard.Filters.EndDate)
			},
		},
		{
			name: "filtro de plataforma não afeta a tabela diária",
			filters: &domain.DashboardFilters{
				Platforms: []string{domain.PlatformFacebook},
			},
			validate: func(t *testing.T, dashboard *DashboardResponse) {
				assert.Len(t, dashboard.Marketing, 2)
				assert.Len(t, dashboard.Daily, 4, "métricas do negócio não têm canal")
			},
		},
		{
			name: "intervalo restringe as duas tabelas de forma consistente",
			filters: &domain.DashboardFilters{
				StartDate: ptrDate(date(2024, 1, 2)),
				EndDate:   ptrDate(date(2024, 1, 3)),
			},
			validate: func(t *testing.T, dashboard *DashboardResponse) {
				assert.Len(t, dashboard.Marketing, 3)
				assert.Len(t, dashboard.Daily, 2)
			},
		},
		{
			name: "intervalo totalmente anterior aos dados produz tabelas vazias",
			filters: &domain.DashboardFilters{
				StartDate: ptrDate(date(2023, 1, 1)),
				EndDate:   ptrDate(date(2023, 12, 31)),
			},
			validate: func(t *testing.T, dashboard *DashboardResponse) {
				assert.Empty(t, dashboard.Marketing)
				assert.Empty(t, dashboard.Daily)
			},
		},
		{
			name: "intervalo invertido produz tabelas vazias sem erro",
			filters: &domain.DashboardFilters{
				StartDate: ptrDate(date(2024, 1, 3)),
				EndDate:   ptrDate(date(2024, 1, 1)),
			},
			validate: func(t *testing.T, dashboard *DashboardResponse) {
				assert.Empty(t, dashboard.Marketing)
				assert.Empty(t, dashboard.Daily)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dashboard, err := service.GetDashboard(tt.filters)
			require.NoError(t, err)
			tt.validate(t, dashboard)
		})
	}
}

func TestService_GetDashboard_FilteringIsPure(t *testing.T) {
	service := newLoadedService(t)

	narrow := &domain.DashboardFilters{
		StartDate: ptrDate(date(2024, 1, 2)),
		EndDate:   ptrDate(date(2024, 1, 2)),
		Platforms: []string{domain.PlatformGoogle},
	}

	first, err := service.GetDashboard(narrow)
	require.NoError(t, err)
	require.Len(t, first.Marketing, 1)

	// Repetir a mesma chamada e uma chamada mais ampla não acumula estado
	wide, err := service.GetDashboard(nil)
	require.NoError(t, err)
	assert.Len(t, wide.Marketing, 4)

	second, err := service.GetDashboard(narrow)
	require.NoError(t, err)
	assert.Equal(t, first.Marketing, second.Marketing)
	assert.Equal(t, first.Daily, second.Daily)

	// As tabelas base do snapshot permanecem intactas
	assert.Len(t, service.Snapshot().Marketing, 4)
	assert.Len(t, service.Snapshot().Daily, 4)
}

func TestService_GetDashboard_FilterComposition(t *testing.T) {
	service := newLoadedService(t)

	// Filtrar por intervalo e depois por plataforma deve equivaler ao filtro combinado
	combined, err := service.GetDashboard(&domain.DashboardFilters{
		StartDate: ptrDate(date(2024, 1, 2)),
		EndDate:   ptrDate(date(2024, 1, 3)),
		Platforms: []string{domain.PlatformFacebook, domain.PlatformTikTok},
	})
	require.NoError(t, err)

	byRange, err := service.GetDashboard(&domain.DashboardFilters{
		StartDate: ptrDate(date(2024, 1, 2)),
		EndDate:   ptrDate(date(2024, 1, 3)),
	})
	require.NoError(t, err)

	manual := make([]*domain.MarketingRecord, 0)
	for _, record := range byRange.Marketing {
		if record.Platform == domain.PlatformFacebook || record.Platform == domain.PlatformTikTok {
			manual = append(manual, record)
		}
	}

	assert.Equal(t, manual, combined.Marketing)
}

func TestService_GetDashboard_WithoutSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSource(ctrl))

	_, err := service.GetDashboard(nil)
	assert.ErrorIs(t, err, ErrSnapshotNotLoaded)
}
