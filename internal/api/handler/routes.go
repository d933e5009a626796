package handler

import (
	"net/http"

	"github.com/shreyanithin/marketing-intelligence-api/internal/api/handler/router"
	"github.com/shreyanithin/marketing-intelligence-api/internal/scheduler"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/dashboarding"
	"github.com/shreyanithin/marketing-intelligence-api/internal/usecases/exporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(service *dashboarding.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/kpis",
			Method:  http.MethodGet,
			Handler: GetOverallKPIs(service),
		},
		{
			Path:    "/v1/dashboard/performance/:dimension",
			Method:  http.MethodGet,
			Handler: GetPerformance(service),
		},
	}
}

func Export(dashboardService *dashboarding.Service, exportService exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDailyReport(dashboardService, exportService),
		},
	}
}

func Datasets(dashboardService *dashboarding.Service, reloadService *scheduler.DatasetReloadService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/reload",
			Method:  http.MethodPost,
			Handler: ReloadDatasets(reloadService),
		},
		{
			Path:    "/v1/datasets/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(dashboardService, reloadService),
		},
	}
}
