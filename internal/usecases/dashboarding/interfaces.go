package dashboarding

import (
	"github.com/shreyanithin/marketing-intelligence-api/internal/domain"
)

// Dashboarder expõe as consultas do dashboard sobre o snapshot carregado
type Dashboarder interface {
	GetDashboard(filters *domain.DashboardFilters) (*DashboardResponse, error)
	GetOverallKPIs(filters *domain.DashboardFilters) (*OverallKPIs, error)
	GetPerformance(dimension string, filters *domain.DashboardFilters) ([]*PerformanceGroup, error)
	GetDailyTable(filters *domain.DashboardFilters) ([]*domain.JoinedDay, error)
	Snapshot() *Snapshot
}

// Reloader recarrega os arquivos de origem e reconstrói o snapshot
type Reloader interface {
	Reload() (*Snapshot, error)
}
